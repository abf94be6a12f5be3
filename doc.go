// Package rangeslider is a range-slider widget for [Ebitengine] scenes.
//
// A slider stands in for a value-bearing [Input]: it draws a track, an
// optional buffer bar, a fill and a draggable handle, turns pointer input
// into stepped values within [min, max] and keeps the Input's value and
// attributes in sync.
//
// # Quick start
//
//	scene := rangeslider.NewScene()
//	sliders := rangeslider.NewFactory(scene)
//
//	volume := rangeslider.NewInput("volume")
//	s, err := sliders.Create(volume, rangeslider.Options{
//		Min: rangeslider.Float(0), Max: rangeslider.Float(10), Step: rangeslider.Float(0.5),
//		X: 40, Y: 40, Length: 300,
//		OnSlide: func(value, percent, position float64) { fmt.Println(value) },
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = s
//	rangeslider.Run(scene, rangeslider.RunConfig{Title: "Sliders", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update], [Scene.Draw] and [Scene.Resize] from it.
//
// # Values
//
// The handle offset maps linearly onto [min, max]. Values snap to the
// nearest multiple of step counted from min and are rounded to the step's
// decimal precision. A [Stick] rule then pulls values toward multiples of
// its target when they are within its tolerance.
//
// # Events
//
// The scene turns mouse and touch input into pointer, mouse and touch
// events; see [Scene.AddEventListener]. Each slider listens for its start
// events and, while a pointer is down, its move and end events. Changes
// made by a slider are dispatched on the Input with the slider's
// [InstanceID] as Origin so the slider can ignore its own notifications;
// external changes ([Input.Change]) move the handle.
//
// # Configuration
//
// [Options] can be decoded from maps ([DecodeOptions]) or YAML
// ([ParseOptionsYAML]). Fields left unset fall back to the Input's
// attributes, then to defaults.
//
// # Testing
//
// [Scene.InjectClick], [Scene.InjectDrag] and [Scene.InjectTouchDrag] queue
// synthetic input consumed one sample per frame. [LoadTestScript] drives the
// same through a JSON script.
//
// [Ebitengine]: https://ebitengine.org
package rangeslider
