package log

import (
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Level  = zapcore.Level
	Field  = zap.Field
	Option = zap.Option
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

var (
	Skip       = zap.Skip
	String     = zap.String
	Strings    = zap.Strings
	Int        = zap.Int
	Bool       = zap.Bool
	Float      = zap.Float64
	Any        = zap.Any
	ErrorField = zap.Error
	Duration   = zap.Duration

	WithCaller    = zap.WithCaller
	AddCallerSkip = zap.AddCallerSkip
)

type Logger struct {
	l     *zap.Logger
	level zap.AtomicLevel
}

var std atomic.Pointer[Logger]

func init() {
	std.Store(New(os.Stderr, InfoLevel))
}

// Default returns the process wide logger.
func Default() *Logger {
	return std.Load()
}

// ResetDefault replaces the process wide logger.
func ResetDefault(l *Logger) {
	std.Store(l)
}

// ParseLevel parses a zap level name (debug, info, warn, error, fatal).
func ParseLevel(s string) (Level, error) {
	return zapcore.ParseLevel(s)
}

// New creates a logger writing json to out.
func New(out io.Writer, level Level, opts ...Option) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	return newLogger(zapcore.NewJSONEncoder(cfg), out, level, opts...)
}

// DevLogger creates a logger writing human readable text to out.
func DevLogger(out io.Writer, level Level, opts ...Option) *Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return newLogger(zapcore.NewConsoleEncoder(cfg), out, level, opts...)
}

func newLogger(enc zapcore.Encoder, out io.Writer, level Level, opts ...Option) *Logger {
	atom := zap.NewAtomicLevelAt(level)
	core := zapcore.NewCore(enc, zapcore.AddSync(out), atom)
	return &Logger{l: zap.New(core, opts...), level: atom}
}

// Named returns a child logger, names are joined by dots.
func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

// With returns a child logger with the fields added to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l: l.l.With(fields...), level: l.level}
}

func (l *Logger) Level() Level {
	return l.level.Level()
}

func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level)
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.l.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.l.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.l.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.l.Error(msg, fields...)
}

func (l *Logger) Fatal(msg string, fields ...Field) {
	l.l.Fatal(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

func Debug(msg string, fields ...Field) {
	std.Load().l.Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	std.Load().l.Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	std.Load().l.Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	std.Load().l.Error(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	std.Load().l.Fatal(msg, fields...)
}

func Sync() error {
	return std.Load().Sync()
}
