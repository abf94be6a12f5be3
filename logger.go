package rangeslider

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// logLevel gates the default logger. Scene.SetDebugMode lowers it to Debug.
var logLevel = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelWarn)
	return v
}()

var logger = newLogger(os.Stderr)

// newLogger writes text records to w, standardising the "error" key to "err".
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	})).With(slog.String("component", "rangeslider"))
}

// SetLogger replaces the package logger. A nil logger discards all records.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger
}

// debugCheckDisposed panics when a disposed node is used in a tree operation.
// Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("rangeslider debug: %s on disposed node %q", op, n.Name))
	}
}
