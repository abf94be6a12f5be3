package rangeslider

// syntheticPointerEvent represents a single injected pointer sample in
// screen coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
	touch            bool
}

// touchInjectSlot is the pointer slot used for injected touches.
const touchInjectSlot = 1

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's input processing.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectButtonPress queues a press of an arbitrary mouse button.
func (s *Scene) InjectButtonPress(x, y float64, button MouseButton) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: true, button: button,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: false, button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	s.injectDrag(fromX, fromY, toX, toY, frames, false)
}

// InjectTouchDrag is InjectDrag for a single touch contact.
func (s *Scene) InjectTouchDrag(fromX, fromY, toX, toY float64, frames int) {
	s.injectDrag(fromX, fromY, toX, toY, frames, true)
}

// InjectTouch queues a touch sample. pressed=false lifts the finger.
func (s *Scene) InjectTouch(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y, pressed: pressed, button: MouseButtonLeft, touch: true,
	})
}

func (s *Scene) injectDrag(fromX, fromY, toX, toY float64, frames int, touch bool) {
	if frames < 2 {
		frames = 2
	}
	push := func(x, y float64, pressed bool) {
		s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
			screenX: x, screenY: y, pressed: pressed, button: MouseButtonLeft, touch: touch,
		})
	}
	push(fromX, fromY, true)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		push(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, true)
	}
	push(toX, toY, false)
}

// PendingInput returns the number of queued synthetic events.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (device
// input is skipped for that frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	pointerID := 0
	if evt.touch {
		pointerID = touchInjectSlot
	}
	s.processPointer(pointerID, evt.screenX, evt.screenY, evt.pressed, evt.button, evt.touch)
	return true
}
