package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"invisinote/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus entry so fields can be accumulated with With.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

type options struct {
	out      io.Writer
	outSet   bool
	json     bool
	filePath string
	level    logrus.Level
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
		o.outSet = true
	}
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithFile appends log lines to the file at path in addition to the normal output.
func WithFile(path string) Option {
	return func(o *options) {
		o.filePath = path
	}
}

// WithLevel sets the minimum level. Unknown names keep the default.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// NewLogger creates a logger. Without options it writes text lines to stdout.
func NewLogger(opts ...Option) *Logger {
	o := &options{level: logrus.DebugLevel}
	for _, opt := range opts {
		opt(o)
	}
	if !o.outSet {
		o.out = os.Stdout
	}

	base := logrus.New()
	base.SetLevel(o.level)
	if o.json {
		base.SetFormatter(&jsonFormatter{})
	} else {
		base.SetFormatter(&textFormatter{})
	}

	l := &Logger{}
	out := o.out
	if o.filePath != "" {
		if err := os.MkdirAll(filepath.Dir(o.filePath), 0755); err == nil {
			f, err := os.OpenFile(o.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err == nil {
				l.file = f
				out = io.MultiWriter(out, f)
			}
		}
	}
	base.SetOutput(out)
	l.entry = logrus.NewEntry(base)
	return l
}

// Configure replaces the package-level logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Default returns the package-level logger.
func Default() *Logger {
	return logger
}

// SetDebug toggles debug output for every logger.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// With returns a logger that adds fields to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), file: l.file}
}

// WithError returns a logger carrying err and, for application errors, its kind and subject.
func (l *Logger) WithError(err error) *Logger {
	return l.With(errorFields(err)...)
}

// WithContext attaches ctx to the entry.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	return &Logger{entry: l.entry.WithContext(ctx), file: l.file}
}

func (l *Logger) Debug(args ...interface{}) {
	if isDebug.Load() {
		l.log(logrus.DebugLevel, fmt.Sprint(args...))
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		l.log(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Info(args ...interface{}) {
	l.log(logrus.InfoLevel, fmt.Sprint(args...))
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(args ...interface{}) {
	l.log(logrus.WarnLevel, fmt.Sprint(args...))
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(args ...interface{}) {
	l.log(logrus.ErrorLevel, fmt.Sprint(args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

// log must be called directly from an exported method or function so the
// caller two frames up is the user's code.
func (l *Logger) log(level logrus.Level, msg string) {
	entry := l.entry
	if _, file, line, ok := runtime.Caller(2); ok {
		entry = entry.WithField("caller", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	}
	entry.Log(level, msg)
}

func errorFields(err error) []Field {
	if err == nil {
		return []Field{F("error", "<nil>")}
	}
	fields := []Field{
		F("error", err.Error()),
		F("error_kind", int(errors.KindOf(err))),
	}

	var folderErr *errors.FolderError
	var noteErr *errors.NoteError
	var configErr *errors.ConfigError
	switch {
	case errors.As(err, &folderErr) && folderErr.Path() != "":
		fields = append(fields, F("path", folderErr.Path()))
	case errors.As(err, &noteErr) && noteErr.Path() != "":
		fields = append(fields, F("path", noteErr.Path()))
	}
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	return fields
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger with err's fields attached.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	logger.WithError(err).log(logrus.ErrorLevel, msg)
}

func Debug(args ...interface{}) {
	if isDebug.Load() {
		logger.log(logrus.DebugLevel, fmt.Sprint(args...))
	}
}

func Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		logger.log(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

func Info(args ...interface{}) {
	logger.log(logrus.InfoLevel, fmt.Sprint(args...))
}

func Infof(format string, args ...interface{}) {
	logger.log(logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func Warn(args ...interface{}) {
	logger.log(logrus.WarnLevel, fmt.Sprint(args...))
}

func Warnf(format string, args ...interface{}) {
	logger.log(logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func Error(args ...interface{}) {
	logger.log(logrus.ErrorLevel, fmt.Sprint(args...))
}

func Errorf(format string, args ...interface{}) {
	logger.log(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}
