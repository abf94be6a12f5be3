package rangeslider

import (
	"maps"
	"strconv"
)

// InstanceID identifies a slider. IDs start at 1.
type InstanceID uint32

// NoOrigin marks a notification that did not come from a slider.
const NoOrigin InstanceID = 0

// InputEventType distinguishes Input notifications.
type InputEventType uint8

const (
	InputChange InputEventType = iota // value committed
	InputInput                        // value changed while interacting
)

// String returns the DOM-style event name.
func (t InputEventType) String() string {
	if t == InputInput {
		return "input"
	}
	return "change"
}

// InputEvent is a change or input notification on an Input. Origin is the
// ID of the slider that caused it, or NoOrigin for external changes.
type InputEvent struct {
	Type   InputEventType
	Input  *Input
	Origin InstanceID
}

// External reports whether the notification carries no slider origin.
func (e InputEvent) External() bool {
	return e.Origin == NoOrigin
}

type inputListener struct {
	id uint32
	fn func(InputEvent)
}

// InputListenerHandle allows removing a listener added with Input.AddListener.
type InputListenerHandle struct {
	id  uint32
	typ InputEventType
	in  *Input
}

// Remove unregisters the listener. Removing twice is a no-op.
func (h InputListenerHandle) Remove() {
	if h.in == nil {
		return
	}
	delete(h.in.active, h.id)
	ls := h.in.listeners[h.typ]
	for i := range ls {
		if ls[i].id == h.id {
			h.in.listeners[h.typ] = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// Input is the value-bearing control a slider stands in for. It holds the
// current value, string attributes (min, max, step, stick, data-buffer), a
// disabled flag and change/input listeners.
type Input struct {
	Name     string
	Disabled bool
	// Hidden is set while a slider renders in place of the control.
	Hidden bool

	value    float64
	hasValue bool
	attrs    map[string]string

	listeners map[InputEventType][]inputListener
	active    map[uint32]struct{}
	nextID    uint32
}

// NewInput creates an Input with no value and no attributes.
func NewInput(name string) *Input {
	return &Input{
		Name:      name,
		attrs:     make(map[string]string),
		listeners: make(map[InputEventType][]inputListener),
		active:    make(map[uint32]struct{}),
	}
}

// Value returns the current value (0 if none was ever set).
func (in *Input) Value() float64 {
	return in.value
}

// HasValue reports whether a value was ever set.
func (in *Input) HasValue() bool {
	return in.hasValue
}

// SetValue writes the value without notifying listeners.
func (in *Input) SetValue(v float64) {
	in.value = v
	in.hasValue = true
}

// Change writes the value and dispatches an external change notification,
// the way application code changes a control programmatically.
func (in *Input) Change(v float64) {
	in.SetValue(v)
	in.Dispatch(InputEvent{Type: InputChange})
}

// Attr returns the named attribute.
func (in *Input) Attr(name string) (string, bool) {
	v, ok := in.attrs[name]
	return v, ok
}

// SetAttr sets a string attribute.
func (in *Input) SetAttr(name, value string) {
	in.attrs[name] = value
}

// SetFloatAttr sets an attribute to the shortest decimal form of v.
func (in *Input) SetFloatAttr(name string, v float64) {
	in.attrs[name] = strconv.FormatFloat(v, 'f', -1, 64)
}

// RemoveAttr deletes an attribute.
func (in *Input) RemoveAttr(name string) {
	delete(in.attrs, name)
}

// Attrs returns a copy of the attribute map.
func (in *Input) Attrs() map[string]string {
	return maps.Clone(in.attrs)
}

// AddListener registers fn for notifications of type t.
// Panics if fn is nil.
func (in *Input) AddListener(t InputEventType, fn func(InputEvent)) InputListenerHandle {
	if fn == nil {
		panic("rangeslider: nil input listener")
	}
	in.nextID++
	in.listeners[t] = append(in.listeners[t], inputListener{id: in.nextID, fn: fn})
	in.active[in.nextID] = struct{}{}
	return InputListenerHandle{id: in.nextID, typ: t, in: in}
}

// Dispatch delivers ev to the listeners registered for ev.Type. Listeners
// added during the dispatch are not called; listeners removed during it are
// skipped.
func (in *Input) Dispatch(ev InputEvent) {
	ev.Input = in
	ls := in.listeners[ev.Type]
	snapshot := make([]inputListener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		if _, ok := in.active[l.id]; !ok {
			continue
		}
		l.fn(ev)
	}
}

// ListenerCount returns the number of registered listeners of all types.
func (in *Input) ListenerCount() int {
	n := 0
	for _, ls := range in.listeners {
		n += len(ls)
	}
	return n
}
