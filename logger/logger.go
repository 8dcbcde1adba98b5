// Package logger wraps logrus with the field conventions used by the
// edgeworth CLI and HTTP service: JSON or text output, a "component" field,
// caller file:line, and lumberjack-rotated log files.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Fields mirrors logrus.Fields.
type Fields map[string]interface{}

// Log wraps logrus.Logger.
type Log struct {
	*logrus.Logger
}

// Entry wraps logrus.Entry.
type Entry struct {
	*logrus.Entry
}

// Config describes where and how to log.
type Config struct {
	Level  string `yaml:"level"`   // logrus level name
	Format string `yaml:"format"`  // json | text
	Output string `yaml:"output"`  // stdout | stderr | file path
	MaxAge int    `yaml:"max_age"` // days to keep rotated files; 0 appends without rotation
}

var globalLogger = New()

// New returns a JSON logger at the level named by LOG_LEVEL (info when unset
// or unknown), writing to stderr.
func New() *Log {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetReportCaller(true)
	l.SetLevel(logrus.InfoLevel)
	if lvl, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil {
		l.SetLevel(lvl)
	}
	l.SetFormatter(jsonFormatter())

	return &Log{Logger: l}
}

// GetLogger returns the process-wide logger.
func GetLogger() *Log {
	return globalLogger
}

// WithComponent tags entries with the emitting subsystem.
func (l *Log) WithComponent(component string) *Entry {
	return &Entry{Entry: l.Logger.WithField("component", component)}
}

// WithFields returns an entry carrying fields.
func (l *Log) WithFields(fields Fields) *Entry {
	return &Entry{Entry: l.Logger.WithFields(logrus.Fields(fields))}
}

// WithError returns an entry carrying err under the "error" key.
func (l *Log) WithError(err error) *Entry {
	return &Entry{Entry: l.Logger.WithError(err)}
}

// WithComponent adds the component field to e.
func (e *Entry) WithComponent(component string) *Entry {
	return &Entry{Entry: e.Entry.WithField("component", component)}
}

// WithFields adds fields to e.
func (e *Entry) WithFields(fields Fields) *Entry {
	return &Entry{Entry: e.Entry.WithFields(logrus.Fields(fields))}
}

// WithError adds err to e.
func (e *Entry) WithError(err error) *Entry {
	return &Entry{Entry: e.Entry.WithError(err)}
}

// Configure applies cfg. LOG_LEVEL, when set, wins over cfg.Level.
func (l *Log) Configure(cfg Config) error {
	level := cfg.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level '%s'", level)
	}
	l.SetLevel(lvl)
	l.SetReportCaller(true)

	switch cfg.Format {
	case "json", "":
		l.SetFormatter(jsonFormatter())
	case "text":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: callerPrettyfier,
		})
	default:
		return fmt.Errorf("invalid log format '%s'", cfg.Format)
	}

	w, err := openOutput(cfg.Output, cfg.MaxAge)
	if err != nil {
		return err
	}
	l.SetOutput(w)

	return nil
}

// LogDuration records how long an operation took, in milliseconds.
func LogDuration(entry *Entry, operation string, d time.Duration, fields Fields) {
	if fields == nil {
		fields = make(Fields)
	}
	fields["duration_ms"] = float64(d.Nanoseconds()) / 1e6
	fields["operation"] = operation

	entry.WithFields(fields).Info("operation finished")
}

func openOutput(output string, maxAge int) (io.Writer, error) {
	switch output {
	case "stderr", "":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	}
	if maxAge > 0 {
		return &lumberjack.Logger{
			Filename: output,
			MaxAge:   maxAge,
			MaxSize:  100,
			Compress: true,
		}, nil
	}
	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", output, err)
	}

	return file, nil
}

func jsonFormatter() *logrus.JSONFormatter {
	return &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
		CallerPrettyfier: callerPrettyfier,
	}
}

func callerPrettyfier(f *runtime.Frame) (string, string) {
	return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
}
