package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
)

var (
	logPath string

	setupOnce sync.Once
	output    = &sink{console: os.Stdout}

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// sink fans log records out to the console writer and the log file. Both
// loggers share it, so swapping the console takes effect immediately.
type sink struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.console.Write(p)
	if s.file != nil {
		if _, ferr := s.file.Write(p); err == nil {
			err = ferr
		}
	}
	return n, err
}

func (s *sink) setConsole(w io.Writer) {
	s.mu.Lock()
	s.console = w
	s.mu.Unlock()
}

func (s *sink) setFile(f *os.File) {
	s.mu.Lock()
	s.file = f
	s.mu.Unlock()
}

func (s *sink) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
}

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Must be called before the
// first logger is requested.
func SetLogPath(path string) {
	logPath = path
}

// SetOutput replaces stdout as the console destination. The log file, if
// any, keeps receiving records.
func SetOutput(w io.Writer) {
	output.setConsole(w)
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			return
		}
		if f, err := openLogFile(logPath); err == nil {
			output.setFile(f)
		}
	})
}

// openLogFile creates the parent directories of path and opens it for
// appending.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		setup()
		logger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: levelVar}))
	})
	return logger
}

// GetInternalLogger returns the logger used by the navigation core. It is
// quiet (Error) unless NAVSTACK_DEBUG is set.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		if constants.IsDebug() {
			internalLevelVar.Set(slog.LevelDebug)
		} else {
			internalLevelVar.Set(slog.LevelError)
		}
		setup()
		internalLogger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: internalLevelVar})).
			With("component", "navstack")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is Info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLevel(raw))
}

func CloseLogger() {
	output.close()
}
