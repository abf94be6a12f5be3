package rangeslider

import (
	"fmt"
	"log/slog"
)

// Factory creates sliders on a scene and remembers which Input each one is
// bound to, so creating twice for the same Input returns the first slider.
type Factory struct {
	scene      *Scene
	instances  map[*Input]*Slider
	order      []*Slider
	scrollLock *ScrollLock
}

// NewFactory returns a factory for sliders placed on s.
func NewFactory(s *Scene) *Factory {
	return &Factory{
		scene:      s,
		instances:  make(map[*Input]*Slider),
		scrollLock: s.ScrollLock(),
	}
}

// Create binds a slider to in. If in already has one, that slider is
// returned unchanged and o is ignored.
func (f *Factory) Create(in *Input, o Options) (*Slider, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	if s, ok := f.instances[in]; ok {
		return s, nil
	}
	s, err := newSlider(f, in, o)
	if err != nil {
		logger.Error("cannot create slider", slog.String("input", in.Name), slog.Any("error", err))
		return nil, err
	}
	f.instances[in] = s
	f.order = append(f.order, s)
	logger.Debug("slider created",
		slog.Int("slider", int(s.id)),
		slog.String("input", in.Name),
		slog.String("axis", s.axis().String()))
	return s, nil
}

// CreateAll creates a slider per input with shared options. On error the
// sliders created so far are kept and the error names the failing input.
func (f *Factory) CreateAll(inputs []*Input, o Options) ([]*Slider, error) {
	out := make([]*Slider, 0, len(inputs))
	for i, in := range inputs {
		s, err := f.Create(in, o)
		if err != nil {
			return out, fmt.Errorf("input %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Lookup returns the slider bound to in, if any.
func (f *Factory) Lookup(in *Input) (*Slider, bool) {
	s, ok := f.instances[in]
	return s, ok
}

// Len returns the number of live sliders.
func (f *Factory) Len() int {
	return len(f.instances)
}

// Sliders returns the live sliders in creation order.
func (f *Factory) Sliders() []*Slider {
	return append([]*Slider(nil), f.order...)
}

// DestroyAll destroys every live slider.
func (f *Factory) DestroyAll() {
	for _, s := range f.Sliders() {
		s.Destroy()
	}
}

func (f *Factory) forget(s *Slider) {
	if f.instances[s.input] == s {
		delete(f.instances, s.input)
	}
	for i, o := range f.order {
		if o == s {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}
