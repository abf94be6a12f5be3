package rangeslider

import "log/slog"

// session is one pointer interaction, from pointer-down to pointer-up. It
// owns the move and end listeners for its lifetime; a slider has at most one.
type session struct {
	pointerID int
	lastSeq   uint64
	handles   []ListenerHandle
}

// accept filters events to the session's pointer and drops repeated
// deliveries of the same input sample (pointermove and mousemove, say).
func (ss *session) accept(ev *Event) bool {
	if ev.PointerID != ss.pointerID || ev.Seq == ss.lastSeq {
		return false
	}
	ss.lastSeq = ev.Seq
	return true
}

func (s *Slider) beginSession(ev *Event) {
	ss := &session{pointerID: ev.PointerID, lastSeq: ev.Seq}
	ss.handles = append(ss.handles, s.scene.AddEventListeners(s.cfg.MoveEvents, s.onMove)...)
	ss.handles = append(ss.handles, s.scene.AddEventListeners(s.cfg.EndEvents, s.onEnd)...)
	s.session = ss
	if s.cfg.Vertical {
		s.scrollLock.Engage()
	}
	logger.Debug("slide session started",
		slog.Int("slider", int(s.id)), slog.Int("pointer", ev.PointerID))
}

func (s *Slider) endSession() {
	if s.session == nil {
		return
	}
	RemoveListeners(s.session.handles)
	s.session = nil
	if s.cfg.Vertical {
		s.scrollLock.Release()
	}
	logger.Debug("slide session ended", slog.Int("slider", int(s.id)))
}
