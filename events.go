package rangeslider

import (
	"fmt"
	"sort"
)

// Scene-level event names. Mouse input (pointer 0) produces the pointer and
// mouse families; touch input produces the pointer and touch families.
const (
	EventPointerDown = "pointerdown"
	EventPointerMove = "pointermove"
	EventPointerUp   = "pointerup"
	EventMouseDown   = "mousedown"
	EventMouseMove   = "mousemove"
	EventMouseUp     = "mouseup"
	EventTouchStart  = "touchstart"
	EventTouchMove   = "touchmove"
	EventTouchEnd    = "touchend"
	EventResize      = "resize"
)

var knownEvents = map[string]struct{}{
	EventPointerDown: {}, EventPointerMove: {}, EventPointerUp: {},
	EventMouseDown: {}, EventMouseMove: {}, EventMouseUp: {},
	EventTouchStart: {}, EventTouchMove: {}, EventTouchEnd: {},
	EventResize: {},
}

// IsEventName reports whether name is an event the scene can dispatch.
func IsEventName(name string) bool {
	_, ok := knownEvents[name]
	return ok
}

// ValidateEventNames returns an error wrapping ErrInvalidEventName for the
// first unknown name.
func ValidateEventNames(names []string) error {
	for _, name := range names {
		if !IsEventName(name) {
			return fmt.Errorf("%w: %q", ErrInvalidEventName, name)
		}
	}
	return nil
}

// Event carries a scene-level pointer or resize notification. X and Y are
// world coordinates.
type Event struct {
	Type      string
	Target    *Node // topmost interactable node under the pointer, or nil
	PointerID int   // 0 = mouse, 1-9 = touch slots
	Button    MouseButton
	Touch     bool
	X, Y      float64
	ScreenX   float64
	ScreenY   float64

	// Seq identifies the input sample. Every event family dispatched for the
	// same sample shares it.
	Seq uint64

	// Width and Height are set for EventResize.
	Width, Height int

	defaultPrevented bool
}

// PreventDefault suppresses the scene's default action for the event
// (touch scrolling for touch moves).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// IsPrimary reports whether the event comes from the left mouse button or a touch.
func (e *Event) IsPrimary() bool {
	return e.Touch || e.Button == MouseButtonLeft
}

// --- Listener registry ---

type listener struct {
	id uint32
	fn func(*Event)
}

type listenerRegistry struct {
	byName map[string][]listener
	active map[uint32]struct{}
	nextID uint32
}

func newListenerRegistry() listenerRegistry {
	return listenerRegistry{
		byName: make(map[string][]listener),
		active: make(map[uint32]struct{}),
	}
}

// ListenerHandle allows removing a registered scene-level listener.
type ListenerHandle struct {
	id   uint32
	name string
	reg  *listenerRegistry
}

// Remove unregisters the listener. Removing twice is a no-op.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.name, h.id)
}

// RemoveListeners removes every handle in hs.
func RemoveListeners(hs []ListenerHandle) {
	for _, h := range hs {
		h.Remove()
	}
}

func (r *listenerRegistry) add(name string, fn func(*Event)) ListenerHandle {
	r.nextID++
	id := r.nextID
	r.byName[name] = append(r.byName[name], listener{id: id, fn: fn})
	r.active[id] = struct{}{}
	return ListenerHandle{id: id, name: name, reg: r}
}

func (r *listenerRegistry) remove(name string, id uint32) {
	s := r.byName[name]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			s = s[:len(s)-1]
			break
		}
	}
	if len(s) == 0 {
		delete(r.byName, name)
	} else {
		r.byName[name] = s
	}
	delete(r.active, id)
}

// dispatch calls the listeners registered for ev.Type when dispatch began.
// Listeners removed by an earlier listener in the same dispatch are skipped.
func (r *listenerRegistry) dispatch(ev *Event) {
	ls := r.byName[ev.Type]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		if _, ok := r.active[l.id]; !ok {
			continue
		}
		l.fn(ev)
	}
}

// AddEventListener registers fn for the named scene-level event.
// Panics on an unknown event name or nil fn: both are integration bugs.
func (s *Scene) AddEventListener(name string, fn func(*Event)) ListenerHandle {
	if !IsEventName(name) {
		panic(fmt.Sprintf("rangeslider: unknown event name %q", name))
	}
	if fn == nil {
		panic("rangeslider: nil event listener")
	}
	return s.listeners.add(name, fn)
}

// AddEventListeners registers fn for each name and returns the handles in order.
func (s *Scene) AddEventListeners(names []string, fn func(*Event)) []ListenerHandle {
	hs := make([]ListenerHandle, 0, len(names))
	for _, name := range names {
		hs = append(hs, s.AddEventListener(name, fn))
	}
	return hs
}

// ListenerCount returns the number of listeners registered for name, or the
// total across all events when name is empty.
func (s *Scene) ListenerCount(name string) int {
	if name != "" {
		return len(s.listeners.byName[name])
	}
	return len(s.listeners.active)
}

// ListenerNames returns the event names that currently have listeners, sorted.
func (s *Scene) ListenerNames() []string {
	names := make([]string, 0, len(s.listeners.byName))
	for name := range s.listeners.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
