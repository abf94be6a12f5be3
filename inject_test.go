package rangeslider

import "testing"

func TestInjectClickQueuesPressAndRelease(t *testing.T) {
	s := NewScene()
	s.InjectClick(50, 50)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}
	if !s.injectQueue[0].pressed || s.injectQueue[1].pressed {
		t.Error("expected press then release")
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	s := NewScene()
	s.InjectDrag(0, 0, 300, 30, 4)
	if len(s.injectQueue) != 4 {
		t.Fatalf("queued = %d, want 4", len(s.injectQueue))
	}
	for i, x := range []float64{0, 100, 200} {
		if got := s.injectQueue[i].screenX; got != x {
			t.Errorf("event %d x = %v, want %v", i, got, x)
		}
	}
	last := s.injectQueue[3]
	if last.pressed || last.screenX != 300 || last.screenY != 30 {
		t.Errorf("last event = %+v, want release at (300, 30)", last)
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	s := NewScene()
	s.InjectDrag(0, 0, 10, 10, 0)
	if len(s.injectQueue) != 2 {
		t.Errorf("queued = %d, want 2 (press + release)", len(s.injectQueue))
	}
}

func TestInjectTouchDragUsesTouchSlot(t *testing.T) {
	s := NewScene()
	s.InjectTouchDrag(0, 0, 0, 10, 2)
	for i, ev := range s.injectQueue {
		if !ev.touch {
			t.Errorf("event %d is not a touch", i)
		}
	}
}

func TestProcessInjectedInputOnePerFrame(t *testing.T) {
	s := NewScene()
	downs := 0
	s.AddEventListener(EventPointerDown, func(*Event) { downs++ })

	s.InjectClick(5, 5)
	if !s.processInjectedInput() {
		t.Fatal("expected an event to be consumed")
	}
	if s.PendingInput() != 1 || downs != 1 {
		t.Errorf("pending=%d downs=%d after first frame", s.PendingInput(), downs)
	}
	s.processInjectedInput()
	if s.processInjectedInput() {
		t.Error("empty queue should report false")
	}
}
