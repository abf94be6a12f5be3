package rangeslider

import (
	"sort"
	"time"
)

// Timer is a one-shot callback scheduled on the scene clock. The clock only
// advances inside Scene.Update, so callbacks run on the game loop.
type Timer struct {
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer. It returns true if the call prevented the timer
// from firing.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Active reports whether the timer is still waiting to fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped && !t.fired
}

// AfterFunc schedules fn to run once d has elapsed on the scene clock.
func (s *Scene) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.timerSeq++
	t := &Timer{due: s.now + d, seq: s.timerSeq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Now returns the scene clock: total time advanced through Update.
func (s *Scene) Now() time.Duration {
	return s.now
}

// runTimers fires every due timer in due order. While a callback runs the
// clock reads the timer's due time, so timers it schedules are measured from
// when it was due rather than from the end of the frame. Timers scheduled by
// a callback fire in the same pass if they are already due.
func (s *Scene) runTimers() {
	now := s.now
	defer func() { s.now = now }()
	for {
		var due []*Timer
		kept := s.timers[:0]
		for _, t := range s.timers {
			switch {
			case !t.Active():
			case t.due <= s.now:
				due = append(due, t)
			default:
				kept = append(kept, t)
			}
		}
		for i := len(kept); i < len(s.timers); i++ {
			s.timers[i] = nil
		}
		s.timers = kept
		if len(due) == 0 {
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].due != due[j].due {
				return due[i].due < due[j].due
			}
			return due[i].seq < due[j].seq
		})
		for _, t := range due {
			if !t.Active() {
				continue
			}
			t.fired = true
			s.now = t.due
			t.fn()
			s.now = now
		}
	}
}

// Debouncer coalesces bursts of triggers: fn runs once, Delay after a Quiet
// period with no further triggers. A trigger at any point cancels the
// pending run and starts over.
type Debouncer struct {
	Quiet time.Duration
	Delay time.Duration

	scene    *Scene
	fn       func()
	quiet    *Timer
	trailing *Timer
}

// NewDebouncer creates a debouncer on the scene clock.
func NewDebouncer(s *Scene, quiet, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{Quiet: quiet, Delay: delay, scene: s, fn: fn}
}

// Trigger records an event and (re)starts the quiet period.
func (d *Debouncer) Trigger() {
	d.Stop()
	d.quiet = d.scene.AfterFunc(d.Quiet, func() {
		d.quiet = nil
		d.trailing = d.scene.AfterFunc(d.Delay, func() {
			d.trailing = nil
			d.fn()
		})
	})
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.quiet.Stop()
	d.trailing.Stop()
	d.quiet = nil
	d.trailing = nil
}

// Pending reports whether a run is scheduled.
func (d *Debouncer) Pending() bool {
	return d.quiet.Active() || d.trailing.Active()
}
