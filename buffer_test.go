package rangeslider

import (
	"errors"
	"math"
	"testing"
)

func TestParseBuffer(t *testing.T) {
	tests := []struct {
		raw  string
		want Buffer
	}{
		{"40", Buffer{Amount: 40, Unit: BufferPercent}},
		{"40%", Buffer{Amount: 40, Unit: BufferPercent}},
		{" 12.5 % ", Buffer{Amount: 12.5, Unit: BufferPercent}},
		{"120px", Buffer{Amount: 120, Unit: BufferPixels}},
	}
	for _, tt := range tests {
		got, err := ParseBuffer(tt.raw)
		if err != nil {
			t.Errorf("ParseBuffer(%q): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBuffer(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestParseBufferInvalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "px", "10em", "NaN%"} {
		if _, err := ParseBuffer(raw); !errors.Is(err, ErrInvalidBuffer) {
			t.Errorf("ParseBuffer(%q) err = %v, want ErrInvalidBuffer", raw, err)
		}
	}
}

func TestBufferPercent(t *testing.T) {
	tests := []struct {
		name  string
		b     Buffer
		track float64
		want  float64
	}{
		{"percent", Buffer{40, BufferPercent}, 200, 40},
		{"pixels", Buffer{50, BufferPixels}, 200, 25},
		{"clamped high", Buffer{150, BufferPercent}, 200, 100},
		{"clamped low", Buffer{-10, BufferPixels}, 200, 0},
		{"pixels on empty track", Buffer{50, BufferPixels}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Percent(tt.track); got != tt.want {
				t.Errorf("Percent(%v) = %v, want %v", tt.track, got, tt.want)
			}
		})
	}
}

func TestBufferString(t *testing.T) {
	if got := (Buffer{12.5, BufferPercent}).String(); got != "12.5%" {
		t.Errorf("String() = %q, want 12.5%%", got)
	}
	if got := (Buffer{120, BufferPixels}).String(); got != "120px" {
		t.Errorf("String() = %q, want 120px", got)
	}
}

func TestBufferLayout(t *testing.T) {
	offset, length := bufferLayout(50, 10, 200)
	if offset != 2.5 || length != 45 {
		t.Errorf("bufferLayout(50, 10, 200) = %v, %v; want 2.5, 45", offset, length)
	}
	_, length = bufferLayout(2, 10, 200)
	if length != 0 {
		t.Errorf("length = %v, want 0 when the buffer is shorter than the padding", length)
	}
	offset, length = bufferLayout(30, 10, 0)
	if offset != 0 || math.Abs(length-30) > 1e-12 {
		t.Errorf("bufferLayout on empty track = %v, %v; want 0, 30", offset, length)
	}
}
