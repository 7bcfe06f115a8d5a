package navstack

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first frame to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput replaces stdout as the console log destination. It may be
// called at any time; a log file set with SetLogPath keeps receiving records.
func SetLogOutput(w io.Writer) {
	internal.SetOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetDebug turns transition and gesture tracing on or off. It is on from
// the start when NAVSTACK_DEBUG is set.
func SetDebug(on bool) {
	if on {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// CloseLogger flushes and closes the log file, if any.
func CloseLogger() {
	internal.CloseLogger()
}
