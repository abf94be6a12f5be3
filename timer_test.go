package rangeslider

import (
	"testing"
	"time"
)

func TestAfterFuncFiresWhenDue(t *testing.T) {
	s := NewScene()
	fired := 0
	tm := s.AfterFunc(100*time.Millisecond, func() { fired++ })

	s.advance(99 * time.Millisecond)
	if fired != 0 || !tm.Active() {
		t.Fatalf("fired early: fired=%d active=%v", fired, tm.Active())
	}
	s.advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if tm.Active() {
		t.Error("timer still active after firing")
	}
	s.advance(time.Second)
	if fired != 1 {
		t.Errorf("fired = %d after more time, want 1", fired)
	}
}

func TestTimerStop(t *testing.T) {
	s := NewScene()
	fired := false
	tm := s.AfterFunc(10*time.Millisecond, func() { fired = true })
	if !tm.Stop() {
		t.Error("Stop on a pending timer should return true")
	}
	if tm.Stop() {
		t.Error("second Stop should return false")
	}
	s.advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestTimersFireInDueOrder(t *testing.T) {
	s := NewScene()
	var order []int
	s.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
	s.AfterFunc(20*time.Millisecond, func() { order = append(order, 2) })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, 11) })

	s.advance(time.Second)
	want := []int{1, 11, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTimerScheduledFromCallback(t *testing.T) {
	s := NewScene()
	fired := false
	s.AfterFunc(10*time.Millisecond, func() {
		s.AfterFunc(0, func() { fired = true })
	})
	s.advance(10 * time.Millisecond)
	if !fired {
		t.Error("zero-delay timer scheduled from a callback should fire in the same pass")
	}
}

func TestDebouncerWaitsForQuietThenDelay(t *testing.T) {
	s := NewScene()
	runs := 0
	d := NewDebouncer(s, 50*time.Millisecond, 300*time.Millisecond, func() { runs++ })

	d.Trigger()
	s.advance(40 * time.Millisecond)
	d.Trigger() // restarts the quiet period
	s.advance(40 * time.Millisecond)
	if !d.Pending() {
		t.Fatal("expected a pending run")
	}
	s.advance(10 * time.Millisecond) // quiet period over
	s.advance(299 * time.Millisecond)
	if runs != 0 {
		t.Fatalf("ran before the delay elapsed: runs=%d", runs)
	}
	s.advance(time.Millisecond)
	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}
	if d.Pending() {
		t.Error("still pending after running")
	}
}

func TestDebouncerTriggerDuringDelayRestarts(t *testing.T) {
	s := NewScene()
	runs := 0
	d := NewDebouncer(s, 50*time.Millisecond, 300*time.Millisecond, func() { runs++ })

	d.Trigger()
	s.advance(200 * time.Millisecond)
	d.Trigger()
	s.advance(200 * time.Millisecond)
	if runs != 0 {
		t.Fatalf("runs = %d, want 0", runs)
	}
	s.advance(150 * time.Millisecond)
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestDebouncerDelayCountsFromQuietDeadline(t *testing.T) {
	s := NewScene()
	runs := 0
	var at time.Duration
	d := NewDebouncer(s, 50*time.Millisecond, 300*time.Millisecond, func() {
		runs++
		at = s.Now()
	})

	d.Trigger()
	s.advance(200 * time.Millisecond) // one long frame past the quiet period
	if runs != 0 {
		t.Fatalf("runs = %d, want 0", runs)
	}
	s.advance(150 * time.Millisecond)
	if runs != 1 {
		t.Fatalf("runs = %d at 350ms, want 1", runs)
	}
	if at != 350*time.Millisecond {
		t.Errorf("callback saw clock %v, want 350ms", at)
	}
	if s.Now() != 350*time.Millisecond {
		t.Errorf("Now = %v after advance, want 350ms", s.Now())
	}
}

func TestTimersScheduledInCallbackFireInSameAdvance(t *testing.T) {
	s := NewScene()
	var fired []time.Duration
	s.AfterFunc(10*time.Millisecond, func() {
		fired = append(fired, s.Now())
		s.AfterFunc(20*time.Millisecond, func() {
			fired = append(fired, s.Now())
		})
	})
	s.advance(time.Second)
	want := []time.Duration{10 * time.Millisecond, 30 * time.Millisecond}
	if len(fired) != len(want) {
		t.Fatalf("fired = %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired[%d] = %v, want %v", i, fired[i], want[i])
		}
	}
	if s.Now() != time.Second {
		t.Errorf("Now = %v, want 1s", s.Now())
	}
}

func TestDebouncerStop(t *testing.T) {
	s := NewScene()
	runs := 0
	d := NewDebouncer(s, 50*time.Millisecond, 300*time.Millisecond, func() { runs++ })
	d.Trigger()
	d.Stop()
	s.advance(time.Second)
	if runs != 0 {
		t.Errorf("runs = %d after Stop, want 0", runs)
	}
	d.Stop() // no-op
}
