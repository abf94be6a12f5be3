package rangeslider

import (
	"errors"
	"testing"
)

func TestValidateEventNames(t *testing.T) {
	if err := ValidateEventNames(DefaultStartEvents); err != nil {
		t.Errorf("default start events: %v", err)
	}
	err := ValidateEventNames([]string{EventMouseDown, "mousedwn"})
	if !errors.Is(err, ErrInvalidEventName) {
		t.Errorf("err = %v, want ErrInvalidEventName", err)
	}
}

func TestAddEventListenerPanics(t *testing.T) {
	s := NewScene()
	t.Run("unknown name", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		s.AddEventListener("click", func(*Event) {})
	})
	t.Run("nil listener", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		s.AddEventListener(EventMouseDown, nil)
	})
}

func TestListenerHandleRemove(t *testing.T) {
	s := NewScene()
	calls := 0
	h := s.AddEventListener(EventResize, func(*Event) { calls++ })
	if got := s.ListenerCount(EventResize); got != 1 {
		t.Fatalf("ListenerCount = %d, want 1", got)
	}

	s.Resize(100, 100)
	h.Remove()
	h.Remove() // no-op
	s.Resize(200, 200)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if got := s.ListenerCount(""); got != 0 {
		t.Errorf("total listeners = %d, want 0", got)
	}
	if names := s.ListenerNames(); len(names) != 0 {
		t.Errorf("ListenerNames = %v, want none", names)
	}
}

func TestListenerRemovedDuringDispatchIsSkipped(t *testing.T) {
	s := NewScene()
	var second ListenerHandle
	secondCalls := 0
	s.AddEventListener(EventResize, func(*Event) { second.Remove() })
	second = s.AddEventListener(EventResize, func(*Event) { secondCalls++ })

	s.Resize(10, 10)
	if secondCalls != 0 {
		t.Errorf("listener removed mid-dispatch was called %d times", secondCalls)
	}
}

func TestListenerAddedDuringDispatchWaits(t *testing.T) {
	s := NewScene()
	lateCalls := 0
	s.AddEventListener(EventResize, func(*Event) {
		s.AddEventListener(EventResize, func(*Event) { lateCalls++ })
	})
	s.Resize(10, 10)
	if lateCalls != 0 {
		t.Errorf("listener added mid-dispatch ran in the same dispatch")
	}
	s.Resize(20, 20)
	if lateCalls != 1 {
		t.Errorf("lateCalls = %d, want 1", lateCalls)
	}
}

func TestAddEventListenersOrder(t *testing.T) {
	s := NewScene()
	hs := s.AddEventListeners([]string{EventMouseDown, EventTouchStart}, func(*Event) {})
	if len(hs) != 2 || hs[0].name != EventMouseDown || hs[1].name != EventTouchStart {
		t.Fatalf("handles = %+v", hs)
	}
	names := s.ListenerNames()
	if len(names) != 2 || names[0] != EventMouseDown || names[1] != EventTouchStart {
		t.Errorf("ListenerNames = %v", names)
	}
	RemoveListeners(hs)
	if s.ListenerCount("") != 0 {
		t.Error("RemoveListeners left listeners behind")
	}
}

func TestResizeDispatchesOnlyOnChange(t *testing.T) {
	s := NewScene()
	var got []*Event
	s.AddEventListener(EventResize, func(ev *Event) { got = append(got, ev) })
	s.Resize(640, 480)
	s.Resize(640, 480)
	if len(got) != 1 {
		t.Fatalf("resize events = %d, want 1", len(got))
	}
	if got[0].Width != 640 || got[0].Height != 480 {
		t.Errorf("size = %dx%d", got[0].Width, got[0].Height)
	}
	if w, h := s.Size(); w != 640 || h != 480 {
		t.Errorf("Size() = %dx%d", w, h)
	}
}

func TestEventIsPrimary(t *testing.T) {
	if !(&Event{Button: MouseButtonLeft}).IsPrimary() {
		t.Error("left button should be primary")
	}
	if (&Event{Button: MouseButtonRight}).IsPrimary() {
		t.Error("right button should not be primary")
	}
	if !(&Event{Touch: true}).IsPrimary() {
		t.Error("touch should be primary")
	}
}
