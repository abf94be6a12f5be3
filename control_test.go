package rangeslider

import "testing"

func TestInputValue(t *testing.T) {
	in := NewInput("volume")
	if in.HasValue() {
		t.Error("new input should have no value")
	}
	in.SetValue(12.5)
	if !in.HasValue() || in.Value() != 12.5 {
		t.Errorf("value = %v (has=%v), want 12.5", in.Value(), in.HasValue())
	}
}

func TestInputAttrs(t *testing.T) {
	in := NewInput("volume")
	in.SetAttr("min", "3")
	in.SetFloatAttr("step", 0.25)

	if v, ok := in.Attr("min"); !ok || v != "3" {
		t.Errorf("min = %q, %v", v, ok)
	}
	if v, _ := in.Attr("step"); v != "0.25" {
		t.Errorf("step = %q, want 0.25", v)
	}
	attrs := in.Attrs()
	attrs["min"] = "changed"
	if v, _ := in.Attr("min"); v != "3" {
		t.Error("Attrs should return a copy")
	}
	in.RemoveAttr("min")
	if _, ok := in.Attr("min"); ok {
		t.Error("min should be removed")
	}
}

func TestInputChangeIsExternal(t *testing.T) {
	in := NewInput("volume")
	var got []InputEvent
	in.AddListener(InputChange, func(ev InputEvent) { got = append(got, ev) })
	in.AddListener(InputInput, func(InputEvent) { t.Error("input listener should not fire for Change") })

	in.Change(7)
	if len(got) != 1 {
		t.Fatalf("events = %d, want 1", len(got))
	}
	if !got[0].External() || got[0].Input != in || got[0].Type != InputChange {
		t.Errorf("event = %+v", got[0])
	}
	if in.Value() != 7 {
		t.Errorf("value = %v, want 7", in.Value())
	}
}

func TestInputListenerRemove(t *testing.T) {
	in := NewInput("volume")
	calls := 0
	h := in.AddListener(InputChange, func(InputEvent) { calls++ })
	if in.ListenerCount() != 1 {
		t.Fatalf("ListenerCount = %d, want 1", in.ListenerCount())
	}
	h.Remove()
	h.Remove()
	in.Change(1)
	if calls != 0 || in.ListenerCount() != 0 {
		t.Errorf("calls=%d count=%d after Remove", calls, in.ListenerCount())
	}
}

func TestInputEventTypeString(t *testing.T) {
	if InputChange.String() != "change" || InputInput.String() != "input" {
		t.Errorf("names = %q, %q", InputChange, InputInput)
	}
}

func TestInputAddListenerNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewInput("x").AddListener(InputChange, nil)
}

func TestInputDispatchSkipsListenersRemovedMidDispatch(t *testing.T) {
	in := NewInput("volume")
	var calls []string
	var second InputListenerHandle
	in.AddListener(InputChange, func(InputEvent) {
		calls = append(calls, "first")
		second.Remove()
		in.AddListener(InputChange, func(InputEvent) { calls = append(calls, "late") })
	})
	second = in.AddListener(InputChange, func(InputEvent) { calls = append(calls, "second") })

	in.Change(1)
	if len(calls) != 1 || calls[0] != "first" {
		t.Errorf("calls = %v, want [first]", calls)
	}
}
