package rangeslider

// ScrollLock stops the scene's touch scrolling while a vertical slider is
// being dragged, so a vertical drag is not turned into a scroll. One lock is
// shared by every vertical slider of a scene: its touchmove listener is
// registered when the first slider attaches and removed when the last one
// detaches.
type ScrollLock struct {
	scene      *Scene
	attached   int
	engaged    int
	handle     ListenerHandle
	registered bool
}

// NewScrollLock creates an unattached lock for s.
func NewScrollLock(s *Scene) *ScrollLock {
	return &ScrollLock{scene: s}
}

// ScrollLock returns the scene's shared lock, creating it on first use.
func (s *Scene) ScrollLock() *ScrollLock {
	if s.scrollLock == nil {
		s.scrollLock = NewScrollLock(s)
	}
	return s.scrollLock
}

// Attach registers one more vertical slider.
func (l *ScrollLock) Attach() {
	l.attached++
	if !l.registered {
		l.handle = l.scene.AddEventListener(EventTouchMove, l.onTouchMove)
		l.registered = true
	}
}

// Detach unregisters a vertical slider. The listener goes away with the last one.
func (l *ScrollLock) Detach() {
	if l.attached == 0 {
		return
	}
	l.attached--
	if l.attached == 0 && l.registered {
		l.handle.Remove()
		l.registered = false
		l.engaged = 0
	}
}

// Engage marks the start of a vertical drag.
func (l *ScrollLock) Engage() {
	l.engaged++
}

// Release marks the end of a vertical drag.
func (l *ScrollLock) Release() {
	if l.engaged > 0 {
		l.engaged--
	}
}

// Attached returns the number of attached sliders.
func (l *ScrollLock) Attached() int {
	return l.attached
}

// Engaged reports whether any vertical drag is in progress.
func (l *ScrollLock) Engaged() bool {
	return l.engaged > 0
}

// Registered reports whether the touchmove listener is installed.
func (l *ScrollLock) Registered() bool {
	return l.registered
}

func (l *ScrollLock) onTouchMove(ev *Event) {
	if l.engaged > 0 {
		ev.PreventDefault()
	}
}
