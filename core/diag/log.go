package diag

import (
	"log/slog"
	"os"
)

// NewLogger builds the structured logger used to trace diagnostic
// reporting. Debug-level tracing turns on when LUMEN_DEBUG is set in the
// environment.
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LUMEN_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Report logs each diagnostic in diags as a structured warning, tagged
// with file, kind, and range, for callers that want a trace of what a
// parse produced alongside (not instead of) the formatted terminal output.
func Report(logger *slog.Logger, file string, diags []Diagnostic) {
	for _, d := range diags {
		logger.Warn("diagnostic",
			slog.String("file", file),
			slog.String("kind", d.Kind.String()),
			slog.String("range", d.Range().String()),
		)
	}
}
