package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// FileName is the log file created under <dataDir>/logs.
const FileName = "fairway.log"

// Logger appends structured lines to <dataDir>/logs/fairway.log. The TUI
// owns the terminal, so nothing is ever written to stdout.
type Logger struct {
	*logrus.Logger
	file   *os.File
	path   string
	recent *recentHook
}

// New creates (or reuses) fairway.log inside logDir. An unknown level falls
// back to info and records a warning.
func New(logDir, level string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logDir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}

	log := logrus.New()
	log.SetOutput(f)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02 15:04:05",
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	recent := newRecentHook(recentCapacity)
	log.AddHook(recent)
	if parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		log.SetLevel(parsed)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("Invalid log level, using info")
	}
	return &Logger{Logger: log, file: f, path: path, recent: recent}, nil
}

// Discard returns a logger that drops every entry. Useful in tests.
func Discard() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Logger: log}
}

// Path returns the file backing this logger, or "" for Discard loggers.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// WithRound tags entries with the in-progress round's id.
func (l *Logger) WithRound(id string) *logrus.Entry {
	return l.entry().WithField("round_id", id)
}

// WithComponent tags entries with the emitting component.
func (l *Logger) WithComponent(name string) *logrus.Entry {
	return l.entry().WithField("component", name)
}

func (l *Logger) entry() *logrus.Entry {
	if l == nil || l.Logger == nil {
		return logrus.NewEntry(Discard().Logger)
	}
	return logrus.NewEntry(l.Logger)
}

// Tail returns up to maxLines of the most recent entries written through this
// logger, oldest first.
func (l *Logger) Tail(maxLines int) []string {
	if l == nil || l.recent == nil || maxLines <= 0 {
		return nil
	}
	return l.recent.last(maxLines)
}
