package rangeslider

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// valueTween eases a slider's value toward a target. The gween tween runs
// over progress in [0,1] and the value is interpolated in float64, so large
// ranges keep their precision. Each step moves the handle the way a drag
// would, so stepping and sticking still apply.
type valueTween struct {
	slider   *Slider
	tween    *gween.Tween
	from, to float64
	done     bool
}

// AnimateTo moves the slider to value over d using fn (ease.Linear when nil).
// Slide callbacks do not fire; a change notification is sent when the
// animation ends. A pointer press on the slider cancels the animation.
// A non-positive d applies the value at once.
func (s *Slider) AnimateTo(value float64, d time.Duration, fn ease.TweenFunc) error {
	if s.destroyed {
		return ErrDestroyed
	}
	s.cancelTween()
	if d <= 0 {
		s.setPosition(PositionFromValue(value, s.cfg.Min, s.cfg.Max, s.maxHandleOffset))
		s.input.Dispatch(InputEvent{Type: InputChange, Origin: s.id})
		return nil
	}
	if fn == nil {
		fn = ease.Linear
	}
	t := &valueTween{
		slider: s,
		tween:  gween.New(0, 1, float32(d.Seconds()), fn),
		from:   s.value,
		to:     value,
	}
	s.tween = t
	s.scene.tweens = append(s.scene.tweens, t)
	return nil
}

// Animating reports whether an AnimateTo is in progress.
func (s *Slider) Animating() bool {
	return s.tween != nil && !s.tween.done
}

func (s *Slider) cancelTween() {
	if s.tween != nil {
		s.tween.done = true
		s.tween = nil
	}
}

func (t *valueTween) update(dt time.Duration) {
	if t.done {
		return
	}
	s := t.slider
	if s.destroyed {
		t.done = true
		return
	}
	p, finished := t.tween.Update(float32(dt.Seconds()))
	v := t.from + (t.to-t.from)*float64(p)
	if finished {
		v = t.to
	}
	s.setPosition(PositionFromValue(v, s.cfg.Min, s.cfg.Max, s.maxHandleOffset))
	if finished {
		t.done = true
		s.tween = nil
		s.input.Dispatch(InputEvent{Type: InputChange, Origin: s.id})
	}
}

// updateTweens steps every running animation and drops finished ones.
func (s *Scene) updateTweens(dt time.Duration) {
	if len(s.tweens) == 0 {
		return
	}
	for _, t := range s.tweens {
		t.update(dt)
	}
	kept := s.tweens[:0]
	for _, t := range s.tweens {
		if !t.done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = kept
}
