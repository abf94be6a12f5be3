package rangeslider

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BufferUnit says how a Buffer amount is measured.
type BufferUnit uint8

const (
	BufferPercent BufferUnit = iota // percent of the track length
	BufferPixels                    // pixels along the track
)

// Buffer is a secondary fill level, independent of the slider value.
type Buffer struct {
	Amount float64
	Unit   BufferUnit
}

// ParseBuffer accepts "40", "40%" or "120px".
func ParseBuffer(raw string) (Buffer, error) {
	s := strings.TrimSpace(raw)
	b := Buffer{Unit: BufferPercent}
	switch {
	case strings.HasSuffix(s, "px"):
		b.Unit = BufferPixels
		s = strings.TrimSpace(strings.TrimSuffix(s, "px"))
	case strings.HasSuffix(s, "%"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Buffer{}, fmt.Errorf("%w: %q", ErrInvalidBuffer, raw)
	}
	b.Amount = v
	return b, nil
}

// Percent converts the buffer to percent of trackLength, clamped to [0, 100].
func (b Buffer) Percent(trackLength float64) float64 {
	p := b.Amount
	if b.Unit == BufferPixels {
		if trackLength <= 0 {
			return 0
		}
		p = b.Amount / trackLength * 100
	}
	return Clamp(p, 0, 100)
}

// String renders the buffer in the form ParseBuffer accepts.
func (b Buffer) String() string {
	v := strconv.FormatFloat(b.Amount, 'f', -1, 64)
	if b.Unit == BufferPixels {
		return v + "px"
	}
	return v + "%"
}

// bufferLayout returns the drawn offset and length of a buffer, both in
// percent of the track. The rounded track ends eat borderRadius pixels, so
// the drawn length shrinks by that much and starts half of it in.
func bufferLayout(percent, borderRadius, trackLength float64) (offset, length float64) {
	var padding float64
	if trackLength > 0 {
		padding = borderRadius / trackLength * 100
	}
	length = percent - padding
	if length < 0 {
		length = 0
	}
	return padding * 0.5, length
}
