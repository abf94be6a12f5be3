package rangeslider

import (
	"fmt"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	defaultMin          = 0
	defaultMax          = 100
	defaultStep         = 1
	defaultBorderRadius = 10
	defaultLength       = 200
)

// Default class names. Every generated node also gets a direction class,
// "<class>__horizontal" or "<class>__vertical".
const (
	DefaultRangeClass    = "rangeSlider"
	DefaultDisabledClass = "rangeSlider--disabled"
	DefaultFillClass     = "rangeSlider__fill"
	DefaultBufferClass   = "rangeSlider__buffer"
	DefaultHandleClass   = "rangeSlider__handle"
)

// Default input event names.
var (
	DefaultStartEvents = []string{EventMouseDown, EventTouchStart, EventPointerDown}
	DefaultMoveEvents  = []string{EventMouseMove, EventTouchMove, EventPointerMove}
	DefaultEndEvents   = []string{EventMouseUp, EventTouchEnd, EventPointerUp}
)

// Input attribute names read as fallbacks and written back after resolution.
const (
	AttrMin    = "min"
	AttrMax    = "max"
	AttrStep   = "step"
	AttrStick  = "stick"
	AttrBuffer = "data-buffer"
)

// SlideFunc receives the slider's value, percent in [0, 1] and handle
// position in pixels.
type SlideFunc func(value, percent, position float64)

// Theme holds the colors of the generated nodes.
type Theme struct {
	Track, Fill, Buffer, Handle Color
	// Disabled tints the track while the disabled class is present.
	Disabled Color
}

// DefaultTheme is used when Options.Theme is the zero value.
var DefaultTheme = Theme{
	Track:    Color{R: 0.90, G: 0.90, B: 0.90, A: 1},
	Fill:     Color{R: 0.00, G: 0.60, B: 0.87, A: 1},
	Buffer:   Color{R: 0.75, G: 0.75, B: 0.75, A: 1},
	Handle:   Color{R: 1, G: 1, B: 1, A: 1},
	Disabled: Color{R: 0.6, G: 0.6, B: 0.6, A: 0.5},
}

// Options configures a slider. Nil numeric fields fall back to the Input's
// attributes, then to defaults (min 0, max 100, step 1, value midpoint).
type Options struct {
	Min   *float64 `mapstructure:"min"`
	Max   *float64 `mapstructure:"max"`
	Step  *float64 `mapstructure:"step"`
	Value *float64 `mapstructure:"value"`

	// Buffer is "N" or "N%" (percent of the track) or "Npx".
	Buffer string `mapstructure:"buffer"`
	// Stick is [target] or [target, tolerance].
	Stick        []float64 `mapstructure:"stick"`
	Vertical     bool      `mapstructure:"vertical"`
	BorderRadius *float64  `mapstructure:"borderRadius"`

	// Layout of the generated track, in the parent's coordinates.
	X          float64 `mapstructure:"x"`
	Y          float64 `mapstructure:"y"`
	Length     float64 `mapstructure:"length"`     // along the axis; default 200
	Thickness  float64 `mapstructure:"thickness"`  // across the axis; default 2*BorderRadius
	HandleSize float64 `mapstructure:"handleSize"` // default Thickness

	RangeClass    string `mapstructure:"rangeClass"`
	DisabledClass string `mapstructure:"disabledClass"`
	FillClass     string `mapstructure:"fillClass"`
	BufferClass   string `mapstructure:"bufferClass"`
	HandleClass   string `mapstructure:"handleClass"`
	// NoBuffer disables the buffer node.
	NoBuffer bool `mapstructure:"noBuffer"`

	StartEvents []string `mapstructure:"startEvents"`
	MoveEvents  []string `mapstructure:"moveEvents"`
	EndEvents   []string `mapstructure:"endEvents"`

	Theme  Theme `mapstructure:"-"`
	Parent *Node `mapstructure:"-"` // defaults to the scene root

	OnInit       func()    `mapstructure:"-"`
	OnSlideStart SlideFunc `mapstructure:"-"`
	OnSlide      SlideFunc `mapstructure:"-"`
	OnSlideEnd   SlideFunc `mapstructure:"-"`
}

// Float returns a pointer to v, for the optional fields of Options and Patch.
func Float(v float64) *float64 {
	return &v
}

// Config is the resolved, validated configuration of a slider.
type Config struct {
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
	Step         float64 `yaml:"step"`
	Value        float64 `yaml:"value"`
	Precision    int     `yaml:"precision"`
	Stick        *Stick  `yaml:"stick,omitempty"`
	Buffer       string  `yaml:"buffer,omitempty"`
	Vertical     bool    `yaml:"vertical"`
	BorderRadius float64 `yaml:"borderRadius"`
	Length       float64 `yaml:"length"`
	Thickness    float64 `yaml:"thickness"`
	HandleSize   float64 `yaml:"handleSize"`

	RangeClass    string `yaml:"rangeClass"`
	DisabledClass string `yaml:"disabledClass"`
	FillClass     string `yaml:"fillClass"`
	BufferClass   string `yaml:"bufferClass,omitempty"`
	HandleClass   string `yaml:"handleClass"`

	StartEvents []string `yaml:"startEvents,flow"`
	MoveEvents  []string `yaml:"moveEvents,flow"`
	EndEvents   []string `yaml:"endEvents,flow"`
}

// resolveConfig merges options, Input attributes and defaults, then validates.
func resolveConfig(in *Input, o Options) (Config, error) {
	c := Config{
		Min:  firstNumber(o.Min, attrFloat(in, AttrMin), defaultMin),
		Max:  firstNumber(o.Max, attrFloat(in, AttrMax), defaultMax),
		Step: firstNumber(o.Step, positive(attrFloat(in, AttrStep)), defaultStep),

		Vertical:     o.Vertical,
		BorderRadius: firstNumber(o.BorderRadius, nil, defaultBorderRadius),
		Length:       o.Length,
		Thickness:    o.Thickness,
		HandleSize:   o.HandleSize,

		RangeClass:    orDefault(o.RangeClass, DefaultRangeClass),
		DisabledClass: orDefault(o.DisabledClass, DefaultDisabledClass),
		FillClass:     orDefault(o.FillClass, DefaultFillClass),
		BufferClass:   orDefault(o.BufferClass, DefaultBufferClass),
		HandleClass:   orDefault(o.HandleClass, DefaultHandleClass),

		StartEvents: orDefaultList(o.StartEvents, DefaultStartEvents),
		MoveEvents:  orDefaultList(o.MoveEvents, DefaultMoveEvents),
		EndEvents:   orDefaultList(o.EndEvents, DefaultEndEvents),
	}
	if o.NoBuffer {
		c.BufferClass = ""
	}
	if err := validateRange(c.Min, c.Max, c.Step); err != nil {
		return Config{}, err
	}
	c.Precision = Precision(c.Step)

	var current *float64
	if in.HasValue() {
		v := in.Value()
		current = &v
	}
	c.Value = firstNumber(o.Value, current, c.Min+(c.Max-c.Min)/2)

	stickValues := o.Stick
	if len(stickValues) == 0 {
		if raw, ok := in.Attr(AttrStick); ok {
			vals, err := parseFloatList(raw)
			if err != nil {
				return Config{}, fmt.Errorf("%w: attribute %q: %v", ErrInvalidStick, raw, err)
			}
			stickValues = vals
		}
	}
	st, err := NewStick(stickValues, c.Step)
	if err != nil {
		return Config{}, err
	}
	c.Stick = st

	c.Buffer = o.Buffer
	if c.Buffer == "" {
		c.Buffer, _ = in.Attr(AttrBuffer)
	}

	if c.Length <= 0 {
		c.Length = defaultLength
	}
	if c.Thickness <= 0 {
		c.Thickness = 2 * c.BorderRadius
	}
	if c.HandleSize <= 0 {
		c.HandleSize = c.Thickness
	}

	for _, names := range [][]string{c.StartEvents, c.MoveEvents, c.EndEvents} {
		if err := ValidateEventNames(names); err != nil {
			return Config{}, err
		}
	}
	return c, nil
}

func validateRange(min, max, step float64) error {
	if !(min < max) {
		return fmt.Errorf("%w: min=%v max=%v", ErrInvalidRange, min, max)
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return fmt.Errorf("%w: step=%v", ErrInvalidStep, step)
	}
	return nil
}

// firstNumber returns the first non-nil finite candidate, else def.
func firstNumber(opt, attr *float64, def float64) float64 {
	for _, p := range []*float64{opt, attr} {
		if p != nil && !math.IsNaN(*p) && !math.IsInf(*p, 0) {
			return *p
		}
	}
	return def
}

func positive(p *float64) *float64 {
	if p == nil || *p <= 0 {
		return nil
	}
	return p
}

func attrFloat(in *Input, name string) *float64 {
	raw, ok := in.Attr(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orDefaultList(s, def []string) []string {
	if len(s) == 0 {
		return append([]string(nil), def...)
	}
	return append([]string(nil), s...)
}

// parseFloatList parses space- or comma-separated numbers.
func parseFloatList(raw string) ([]float64, error) {
	fields := splitList(raw)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func splitList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
}

// --- Decoding ---

var (
	floatSliceType  = reflect.TypeOf([]float64(nil))
	stringSliceType = reflect.TypeOf([]string(nil))
)

// listHook lets "stick" and the event lists be written as a single
// space-separated string as well as a list.
func listHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to {
	case floatSliceType:
		return parseFloatList(data.(string))
	case stringSliceType:
		return splitList(data.(string)), nil
	}
	return data, nil
}

// DecodeOptions decodes a generic option map (as produced by YAML or JSON
// decoding) into Options. Unknown keys are an error.
func DecodeOptions(raw map[string]any) (Options, error) {
	var o Options
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &o,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       listHook,
	})
	if err != nil {
		return Options{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	return o, nil
}

// ParseOptionsYAML parses slider options from YAML. The document is either a
// single option map or a map with a "sliders" list.
func ParseOptionsYAML(data []byte) ([]Options, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parse options: empty document")
	}
	list, ok := raw["sliders"]
	if !ok {
		o, err := DecodeOptions(raw)
		if err != nil {
			return nil, err
		}
		return []Options{o}, nil
	}
	items, ok := list.([]any)
	if !ok {
		return nil, fmt.Errorf("parse options: sliders must be a list, got %T", list)
	}
	out := make([]Options, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parse options: sliders[%d] must be a map, got %T", i, item)
		}
		o, err := DecodeOptions(m)
		if err != nil {
			return nil, fmt.Errorf("sliders[%d]: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// LoadOptionsFile reads and parses a YAML options file.
func LoadOptionsFile(path string) ([]Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	return ParseOptionsYAML(data)
}

// YAML renders the resolved configuration.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
