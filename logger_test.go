package rangeslider

import (
	"bytes"
	"strings"
	"testing"
)

func TestInvalidBufferIsLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(newLogger(&buf))
	defer SetLogger(prev)

	_, sl, _ := newTestSlider(t, Options{})
	_ = sl.SetBuffer("lots")

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "ignoring buffer update") {
		t.Errorf("log = %q", out)
	}
	if !strings.Contains(out, "err=") || !strings.Contains(out, "component=rangeslider") {
		t.Errorf("log should carry err and component attributes: %q", out)
	}
}

func TestDebugModeEnablesDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(newLogger(&buf))
	defer SetLogger(prev)

	s, _, _ := newTestSlider(t, Options{})
	if strings.Contains(buf.String(), "level=DEBUG") {
		t.Fatal("debug records should be off by default")
	}
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	s.Resize(100, 100)
	if !strings.Contains(buf.String(), "scene resized") {
		t.Errorf("log = %q, want a debug record", buf.String())
	}
}

func TestSetLoggerNilDiscards(t *testing.T) {
	prev := Logger()
	SetLogger(nil)
	defer SetLogger(prev)
	if Logger() == nil {
		t.Fatal("Logger should never be nil")
	}
	Logger().Warn("dropped")
}
