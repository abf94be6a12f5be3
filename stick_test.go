package rangeslider

import (
	"errors"
	"math"
	"testing"
)

func TestStickResolve(t *testing.T) {
	st := Stick{Target: 10, Tolerance: 1}
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"below target snaps up", 9.4, 10},
		{"just above zero snaps down", 0.9, 0},
		{"just above target snaps down", 10.4, 10},
		{"far from multiples", 5, 5},
		{"exact multiple", 20, 20},
		{"negative snaps to nearest multiple", -9.4, -10},
		{"negative just below zero", -0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := st.Resolve(tt.v); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Resolve(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestStickResolveOutsideTolerance(t *testing.T) {
	st := Stick{Target: 10, Tolerance: 0.3}
	if got := st.Resolve(10.4); got != 10.4 {
		t.Errorf("Resolve(10.4) = %v, want 10.4 unchanged", got)
	}
	if got := st.Resolve(9.6); got != 9.6 {
		t.Errorf("Resolve(9.6) = %v, want 9.6 unchanged", got)
	}
}

func TestNewStickDefaultTolerance(t *testing.T) {
	st, err := NewStick([]float64{25}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if st.Target != 25 || st.Tolerance != 3 {
		t.Errorf("stick = %+v, want target 25 tolerance 3", *st)
	}
}

func TestNewStickEmpty(t *testing.T) {
	st, err := NewStick(nil, 1)
	if err != nil || st != nil {
		t.Errorf("NewStick(nil) = %v, %v; want nil, nil", st, err)
	}
}

func TestNewStickInvalid(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"zero target", []float64{0}},
		{"negative target", []float64{-5, 1}},
		{"negative tolerance", []float64{10, -1}},
		{"infinite target", []float64{math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStick(tt.values, 1)
			if !errors.Is(err, ErrInvalidStick) {
				t.Errorf("err = %v, want ErrInvalidStick", err)
			}
		})
	}
}
