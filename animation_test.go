package rangeslider

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestAnimateToReachesTarget(t *testing.T) {
	s, sl, log := newTestSlider(t, Options{})
	own, _ := countChanges(sl.Input())

	if err := sl.AnimateTo(100, time.Second, ease.Linear); err != nil {
		t.Fatal(err)
	}
	if !sl.Animating() {
		t.Fatal("expected an animation in progress")
	}

	s.advance(500 * time.Millisecond)
	if sl.Value() != 75 {
		t.Errorf("value halfway = %v, want 75", sl.Value())
	}
	if *own != 0 {
		t.Error("change should wait for the end of the animation")
	}

	s.advance(500 * time.Millisecond)
	if sl.Value() != 100 || sl.Position() != 200 {
		t.Errorf("value=%v position=%v, want 100 and 200", sl.Value(), sl.Position())
	}
	if sl.Animating() {
		t.Error("animation should be over")
	}
	if *own != 1 {
		t.Errorf("own changes = %d, want 1", *own)
	}
	if len(s.tweens) != 0 {
		t.Errorf("scene still holds %d tweens", len(s.tweens))
	}
	log.expect(t)
}

func TestAnimateToImmediate(t *testing.T) {
	_, sl, _ := newTestSlider(t, Options{})
	own, _ := countChanges(sl.Input())
	if err := sl.AnimateTo(20, 0, nil); err != nil {
		t.Fatal(err)
	}
	if sl.Value() != 20 || sl.Animating() || *own != 1 {
		t.Errorf("value=%v animating=%v changes=%d", sl.Value(), sl.Animating(), *own)
	}
}

func TestAnimateToDefaultsToLinear(t *testing.T) {
	s, sl, _ := newTestSlider(t, Options{})
	if err := sl.AnimateTo(0, time.Second, nil); err != nil {
		t.Fatal(err)
	}
	s.advance(500 * time.Millisecond)
	if sl.Value() != 25 {
		t.Errorf("value = %v, want 25", sl.Value())
	}
}

func TestAnimateToCancelledByPress(t *testing.T) {
	s, sl, _ := newTestSlider(t, Options{})
	if err := sl.AnimateTo(100, time.Second, ease.Linear); err != nil {
		t.Fatal(err)
	}
	s.advance(200 * time.Millisecond) // value 60, handle at 120

	s.InjectPress(125, 10)
	drain(s)
	if sl.Animating() {
		t.Error("pressing the slider should cancel the animation")
	}
	s.advance(time.Second)
	if sl.Value() != 60 {
		t.Errorf("value = %v, want 60", sl.Value())
	}
	s.InjectRelease(125, 10)
	drain(s)
}

func TestAnimateToRestartReplaces(t *testing.T) {
	s, sl, _ := newTestSlider(t, Options{})
	_ = sl.AnimateTo(100, time.Second, ease.Linear)
	_ = sl.AnimateTo(0, time.Second, ease.Linear)
	s.advance(time.Second)
	if sl.Value() != 0 {
		t.Errorf("value = %v, want 0", sl.Value())
	}
}

func TestAnimateToStopsOnDestroy(t *testing.T) {
	s, sl, _ := newTestSlider(t, Options{})
	_ = sl.AnimateTo(100, time.Second, ease.Linear)
	sl.Destroy()
	s.advance(time.Second)
	if len(s.tweens) != 0 {
		t.Errorf("scene still holds %d tweens", len(s.tweens))
	}
	if err := sl.AnimateTo(10, time.Second, nil); err != ErrDestroyed {
		t.Errorf("err = %v, want ErrDestroyed", err)
	}
}

func TestAnimateToLandsExactlyOnLargeValues(t *testing.T) {
	o := Options{Min: Float(1234000), Max: Float(1235000), Step: Float(0.01), Value: Float(1234000)}
	s, sl, _ := newTestSlider(t, o)
	_, ref, _ := newTestSlider(t, o)
	const target = 1234567.89

	if err := ref.Update(Patch{Value: Float(target)}, false); err != nil {
		t.Fatal(err)
	}
	if err := sl.AnimateTo(target, 300*time.Millisecond, ease.OutCubic); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		s.advance(16 * time.Millisecond)
	}
	if sl.Animating() {
		t.Fatal("animation should be over")
	}
	if sl.Value() != ref.Value() || sl.Input().Value() != ref.Value() {
		t.Errorf("value = %v (input %v), want %v", sl.Value(), sl.Input().Value(), ref.Value())
	}
}
