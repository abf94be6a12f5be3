package rangeslider

import (
	"fmt"
	"log/slog"
	"time"
)

// Resize handling waits for a quiet period, then a settle delay, before
// re-measuring: layout sizes are unreliable mid-resize.
const (
	resizeQuiet = 50 * time.Millisecond
	resizeDelay = 300 * time.Millisecond
)

var instanceCounter InstanceID

func nextInstanceID() InstanceID {
	instanceCounter++
	return instanceCounter
}

// Slider is a range-slider widget bound to an Input. It renders a track,
// an optional buffer bar, a fill and a draggable handle, maps pointer input
// to stepped values and keeps the Input's value in sync.
//
// Create sliders with Factory.Create.
type Slider struct {
	id      InstanceID
	scene   *Scene
	factory *Factory
	input   *Input
	cfg     Config
	theme   Theme

	onSlideStart SlideFunc
	onSlide      SlideFunc
	onSlideEnd   SlideFunc

	value    float64
	percent  float64
	position float64

	bufferPct float64
	hasBuffer bool

	trackLength     float64
	handleSize      float64
	maxHandleOffset float64
	grabOffset      float64

	track, fill, bufferNode, handle *Node

	session         *session
	isDragging      bool
	forceEvents     bool
	slideEventCount int

	startHandles []ListenerHandle
	resizeHandle ListenerHandle
	changeHandle InputListenerHandle
	resize       *Debouncer
	scrollLock   *ScrollLock
	tween        *valueTween

	wasHidden bool
	destroyed bool
}

// Patch lists the fields Update changes. Nil fields are left alone.
type Patch struct {
	Min, Max, Step, Value *float64
	Buffer                *string
}

func newSlider(f *Factory, in *Input, o Options) (*Slider, error) {
	cfg, err := resolveConfig(in, o)
	if err != nil {
		return nil, err
	}
	s := &Slider{
		id:           nextInstanceID(),
		scene:        f.scene,
		factory:      f,
		input:        in,
		cfg:          cfg,
		theme:        o.Theme,
		onSlideStart: o.OnSlideStart,
		onSlide:      o.OnSlide,
		onSlideEnd:   o.OnSlideEnd,
		value:        cfg.Value,
		scrollLock:   f.scrollLock,
	}
	if s.theme == (Theme{}) {
		s.theme = DefaultTheme
	}
	s.updatePercent()
	s.buildNodes(o.X, o.Y)

	if o.Value != nil {
		s.setValue(cfg.Value, true)
	} else if !in.HasValue() {
		in.SetValue(cfg.Value)
	}
	in.SetFloatAttr(AttrMin, cfg.Min)
	in.SetFloatAttr(AttrMax, cfg.Max)
	in.SetFloatAttr(AttrStep, cfg.Step)

	parent := o.Parent
	if parent == nil {
		parent = s.scene.Root()
	}
	parent.AddChild(s.track)
	s.scene.refreshTransforms()

	s.wasHidden = in.Hidden
	in.Hidden = true

	if o.OnInit != nil {
		o.OnInit()
	}
	if cfg.Buffer != "" {
		s.measure()
		_ = s.applyBuffer(cfg.Buffer)
	}
	s.render(false)
	s.grabOffset = s.handleSize / 2

	s.resize = NewDebouncer(s.scene, resizeQuiet, resizeDelay, func() {
		logger.Debug("re-measuring after resize", slog.Int("slider", int(s.id)))
		s.render(false)
	})
	s.resizeHandle = s.scene.AddEventListener(EventResize, func(*Event) { s.resize.Trigger() })
	s.startHandles = s.scene.AddEventListeners(cfg.StartEvents, s.onStart)
	s.changeHandle = in.AddListener(InputChange, s.onChange)

	if cfg.Vertical {
		s.scrollLock.Attach()
	}
	return s, nil
}

// buildNodes creates the track with its buffer, fill and handle children.
func (s *Slider) buildNodes(x, y float64) {
	c := s.cfg
	axis := s.axis()
	decorate := func(n *Node, class string) {
		n.AddClass(class)
		n.AddClass(class + "__" + axis.String())
	}

	s.track = NewNode(fmt.Sprintf("js-%s-%d", c.RangeClass, s.id))
	decorate(s.track, c.RangeClass)
	s.track.Interactable = true
	if c.Vertical {
		s.track.SetSize(c.Thickness, c.Length)
	} else {
		s.track.SetSize(c.Length, c.Thickness)
	}
	s.track.Radius = min(c.BorderRadius, c.Thickness/2)
	s.track.Color = s.theme.Track

	if c.BufferClass != "" {
		s.bufferNode = NewNode("buffer")
		decorate(s.bufferNode, c.BufferClass)
		s.bufferNode.Radius = s.track.Radius
		s.bufferNode.Color = s.theme.Buffer
		s.track.AddChild(s.bufferNode)
	}

	s.fill = NewNode("fill")
	decorate(s.fill, c.FillClass)
	s.fill.Radius = s.track.Radius
	s.fill.Color = s.theme.Fill
	s.track.AddChild(s.fill)

	s.handle = NewNode("handle")
	decorate(s.handle, c.HandleClass)
	s.handle.Interactable = true
	s.handle.SetSize(c.HandleSize, c.HandleSize)
	s.handle.Radius = c.HandleSize / 2
	s.handle.Color = s.theme.Handle
	across := (c.Thickness - c.HandleSize) / 2
	if c.Vertical {
		s.handle.X = across
	} else {
		s.handle.Y = across
	}
	s.track.AddChild(s.handle)

	s.track.SetPosition(x, y)
}

// measure reads the track and handle sizes along the axis.
func (s *Slider) measure() {
	if s.cfg.Vertical {
		s.trackLength = s.track.Height
		s.handleSize = s.handle.Height
	} else {
		s.trackLength = s.track.Width
		s.handleSize = s.handle.Width
	}
	s.maxHandleOffset = max(s.trackLength-s.handleSize, 0)
}

// render re-measures, re-applies the disabled decoration and buffer, and
// moves the handle to the current value.
func (s *Slider) render(notify bool) {
	s.renderAt(s.value, notify)
}

// renderAt is render with the handle moved to v instead of the current
// value. v is fitted to the range and step before the Input is written.
func (s *Slider) renderAt(v float64, notify bool) {
	s.measure()
	s.syncDisabled()
	s.setPosition(PositionFromValue(v, s.cfg.Min, s.cfg.Max, s.maxHandleOffset))
	if s.hasBuffer {
		s.layoutBuffer()
	}
	s.updatePercent()
	if notify {
		s.input.Dispatch(InputEvent{Type: InputChange, Origin: s.id})
	}
}

func (s *Slider) syncDisabled() {
	s.track.ToggleClass(s.cfg.DisabledClass, s.input.Disabled)
	if s.input.Disabled {
		s.track.Color = s.theme.Disabled
	} else {
		s.track.Color = s.theme.Track
	}
}

func (s *Slider) updatePercent() {
	s.percent = (s.value - s.cfg.Min) / (s.cfg.Max - s.cfg.Min)
}

// setPosition turns a pixel offset into a value (clamped, stepped, stuck),
// moves the handle and fill to that value's exact position and notifies.
func (s *Slider) setPosition(pos float64) {
	c := &s.cfg
	value := ValueFromPosition(Clamp(pos, 0, s.maxHandleOffset), c.Min, c.Max, c.Step, s.maxHandleOffset)
	value = FitToRange(value, c.Min, c.Max, c.Step)
	if c.Stick != nil {
		value = FitToRange(c.Stick.Resolve(value), c.Min, c.Max, c.Step)
	}
	position := PositionFromValue(value, c.Min, c.Max, s.maxHandleOffset)

	s.layoutParts(position)
	s.setValue(value, false)

	s.position = position
	s.value = value
	s.updatePercent()

	if s.session == nil && !s.forceEvents {
		return
	}
	if s.session != nil {
		s.isDragging = true
	}
	if s.slideEventCount == 0 && s.onSlideStart != nil {
		s.onSlideStart(s.value, s.percent, s.position)
	}
	if s.onSlide != nil {
		s.onSlide(s.value, s.percent, s.position)
	}
	s.slideEventCount++
}

// layoutParts places the handle at position and stretches the fill to the
// handle's center. Vertical sliders grow from the bottom of the track.
func (s *Slider) layoutParts(position float64) {
	fillLength := position + s.handleSize/2
	if s.cfg.Vertical {
		s.handle.SetPosition(s.handle.X, s.trackLength-s.handleSize-position)
		s.fill.SetPosition(0, s.trackLength-fillLength)
		s.fill.SetSize(s.cfg.Thickness, fillLength)
		return
	}
	s.handle.SetPosition(position, s.handle.Y)
	s.fill.SetPosition(0, 0)
	s.fill.SetSize(fillLength, s.cfg.Thickness)
}

// setValue writes v to the Input and fires a tagged input notification.
func (s *Slider) setValue(v float64, force bool) {
	if v == s.value && !force {
		return
	}
	s.input.SetValue(v)
	s.value = v
	s.input.Dispatch(InputEvent{Type: InputInput, Origin: s.id})
}

// applyBuffer parses and applies a buffer level. Invalid input is logged
// and leaves the buffer unchanged.
func (s *Slider) applyBuffer(raw string) error {
	if s.bufferNode == nil {
		logger.Warn("buffer is disabled, its class name is empty", slog.Int("slider", int(s.id)))
		return ErrBufferDisabled
	}
	b, err := ParseBuffer(raw)
	if err != nil {
		logger.Warn("ignoring buffer update", slog.Int("slider", int(s.id)), slog.Any("error", err))
		return err
	}
	s.bufferPct = b.Percent(s.trackLength)
	s.hasBuffer = true
	s.layoutBuffer()
	s.input.SetFloatAttr(AttrBuffer, s.bufferPct)
	return nil
}

func (s *Slider) layoutBuffer() {
	offset, length := bufferLayout(s.bufferPct, s.cfg.BorderRadius, s.trackLength)
	offsetPx := offset / 100 * s.trackLength
	lengthPx := length / 100 * s.trackLength
	if s.cfg.Vertical {
		s.bufferNode.SetPosition(0, s.trackLength-offsetPx-lengthPx)
		s.bufferNode.SetSize(s.cfg.Thickness, lengthPx)
		return
	}
	s.bufferNode.SetPosition(offsetPx, 0)
	s.bufferNode.SetSize(lengthPx, s.cfg.Thickness)
}

// relativePosition returns the pointer's distance along the axis from the
// track's start: the left edge, or the bottom edge when vertical.
func (s *Slider) relativePosition(ev *Event) float64 {
	lx, ly := s.track.WorldToLocal(ev.X, ev.Y)
	if s.cfg.Vertical {
		return s.trackLength - ly
	}
	return lx
}

// --- Event handlers ---

func (s *Slider) onStart(ev *Event) {
	if s.destroyed || s.session != nil || !ev.IsPrimary() {
		return
	}
	if ev.Target == nil || !ev.Target.IsDescendantOf(s.track) {
		return
	}
	s.syncDisabled()
	if s.track.HasClass(s.cfg.DisabledClass) {
		return
	}
	s.handleDown(ev)
}

func (s *Slider) handleDown(ev *Event) {
	s.cancelTween()
	s.beginSession(ev)

	rel := s.relativePosition(ev)
	// Grabbing the handle keeps the pointer's offset into it, so the
	// handle does not jump.
	if ev.Target.HasClass(s.cfg.HandleClass) {
		s.grabOffset = rel - s.position
		return
	}
	s.grabOffset = s.handleSize / 2
	s.setPosition(rel - s.grabOffset)
}

func (s *Slider) onMove(ev *Event) {
	if s.session == nil || !s.session.accept(ev) {
		return
	}
	s.setPosition(s.relativePosition(ev) - s.grabOffset)
}

func (s *Slider) onEnd(ev *Event) {
	if s.session == nil || !s.session.accept(ev) {
		return
	}
	s.endSession()

	s.input.Dispatch(InputEvent{Type: InputChange, Origin: s.id})
	if s.destroyed {
		return
	}
	if (s.isDragging || s.forceEvents) && s.onSlideEnd != nil {
		s.onSlideEnd(s.value, s.percent, s.position)
	}
	s.slideEventCount = 0
	s.isDragging = false
}

// onChange follows changes made to the Input by anyone but this slider.
func (s *Slider) onChange(ev InputEvent) {
	if s.destroyed || ev.Origin == s.id {
		return
	}
	s.setPosition(PositionFromValue(s.input.Value(), s.cfg.Min, s.cfg.Max, s.maxHandleOffset))
}

// --- Public API ---

// Update applies p atomically and re-renders. With triggerEvents set, the
// slide-start, slide and slide-end callbacks fire as if the user had moved
// the handle. An invalid min/max/step combination returns an error and
// changes nothing; an invalid buffer is logged and skipped.
func (s *Slider) Update(p Patch, triggerEvents bool) error {
	if s.destroyed {
		return ErrDestroyed
	}
	c := &s.cfg
	lo, hi, step := c.Min, c.Max, c.Step
	if p.Min != nil {
		lo = *p.Min
	}
	if p.Max != nil {
		hi = *p.Max
	}
	if p.Step != nil {
		step = *p.Step
	}
	if err := validateRange(lo, hi, step); err != nil {
		return err
	}

	if triggerEvents {
		s.forceEvents = true
	}
	if p.Min != nil {
		c.Min = lo
		s.input.SetFloatAttr(AttrMin, lo)
	}
	if p.Max != nil {
		c.Max = hi
		s.input.SetFloatAttr(AttrMax, hi)
	}
	if p.Step != nil {
		c.Step = step
		c.Precision = Precision(step)
		s.input.SetFloatAttr(AttrStep, step)
	}
	if p.Buffer != nil {
		_ = s.applyBuffer(*p.Buffer)
	}
	target := s.value
	if p.Value != nil {
		target = *p.Value
	}

	s.renderAt(target, true)
	if s.forceEvents && s.onSlideEnd != nil {
		s.onSlideEnd(s.value, s.percent, s.position)
	}
	s.slideEventCount = 0
	s.forceEvents = false
	return nil
}

// SetBuffer sets the buffer bar to "N", "N%" or "Npx". Invalid input is
// logged and leaves the buffer unchanged.
func (s *Slider) SetBuffer(raw string) error {
	if s.destroyed {
		return ErrDestroyed
	}
	return s.applyBuffer(raw)
}

// Destroy detaches every listener the slider owns, removes its nodes and
// restores the Input. Calling it again is a no-op.
func (s *Slider) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.endSession()
	RemoveListeners(s.startHandles)
	s.startHandles = nil
	s.resizeHandle.Remove()
	s.changeHandle.Remove()
	s.resize.Stop()
	s.cancelTween()

	s.input.Hidden = s.wasHidden
	s.track.Dispose()
	s.factory.forget(s)
	if s.cfg.Vertical {
		s.scrollLock.Detach()
	}
	logger.Debug("slider destroyed", slog.Int("slider", int(s.id)))
}

// ID returns the slider's instance ID, the Origin of its notifications.
func (s *Slider) ID() InstanceID { return s.id }

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// Percent returns the value's fraction of [min, max].
func (s *Slider) Percent() float64 { return s.percent }

// Position returns the handle offset in pixels along the axis.
func (s *Slider) Position() float64 { return s.position }

// MaxHandleOffset returns the largest handle offset: track minus handle length.
func (s *Slider) MaxHandleOffset() float64 { return s.maxHandleOffset }

// GrabOffset returns the pointer's offset into the handle for the current
// or last interaction.
func (s *Slider) GrabOffset() float64 { return s.grabOffset }

// IsDragging reports whether the current interaction has moved the handle.
func (s *Slider) IsDragging() bool { return s.isDragging }

// Interacting reports whether a pointer session is open.
func (s *Slider) Interacting() bool { return s.session != nil }

// Buffer returns the buffer level in percent and whether one is set.
func (s *Slider) Buffer() (float64, bool) { return s.bufferPct, s.hasBuffer }

// Config returns the resolved configuration.
func (s *Slider) Config() Config { return s.cfg }

// Min returns the lower bound.
func (s *Slider) Min() float64 { return s.cfg.Min }

// Max returns the upper bound.
func (s *Slider) Max() float64 { return s.cfg.Max }

// Step returns the step.
func (s *Slider) Step() float64 { return s.cfg.Step }

// Vertical reports the slider's orientation.
func (s *Slider) Vertical() bool { return s.cfg.Vertical }

// Input returns the backing control.
func (s *Slider) Input() *Input { return s.input }

// Track returns the track node, the root of the generated nodes.
func (s *Slider) Track() *Node { return s.track }

// Fill returns the fill node.
func (s *Slider) Fill() *Node { return s.fill }

// Handle returns the handle node.
func (s *Slider) Handle() *Node { return s.handle }

// BufferNode returns the buffer node, or nil when the buffer is disabled.
func (s *Slider) BufferNode() *Node { return s.bufferNode }

// Destroyed reports whether Destroy has been called.
func (s *Slider) Destroyed() bool { return s.destroyed }

func (s *Slider) axis() Axis {
	if s.cfg.Vertical {
		return AxisVertical
	}
	return AxisHorizontal
}
