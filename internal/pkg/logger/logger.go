package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logging contract used across handlers, services
// and repositories. Nothing outside this package depends on logrus directly.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// LogrusLogger writes JSON lines through logrus.
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogger builds the process logger writing to stdout.
func NewLogger(level string) Logger {
	return New(os.Stdout, level)
}

// New builds a logger writing to out. Unknown levels fall back to info.
func New(out io.Writer, level string) Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return &LogrusLogger{log: l}
}

// NewNop discards everything. Used by tests.
func NewNop() Logger {
	return New(io.Discard, "panic")
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error) {
	l.log.WithError(err).Error(msg)
}

func (l *LogrusLogger) Fatal(msg string, err error) {
	l.log.WithError(err).Fatal(msg)
}
