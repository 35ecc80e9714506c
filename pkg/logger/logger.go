// Package logger provides structured logging for the university hub.
// It keeps a small Field-based API over a zap core so callers never import
// zap directly.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general operational information.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
	// LevelFatal is for fatal errors that require program termination.
	LevelFatal
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level. Unknown strings map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "FATAL":
		return LevelFatal
	default:
		return LevelInfo
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Common field constructors for convenience.
func String(key, value string) Field          { return Field{Key: key, Value: value} }
func Int(key string, value int) Field         { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field     { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field       { return Field{Key: key, Value: value} }

// Err creates an error field.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Any creates a field with any value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

func toZap(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

// Format selects the encoder.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Logger wraps a zap logger.
type Logger struct {
	z     *zap.Logger
	level Level
	opts  Options
}

// Options configures the logger.
type Options struct {
	Output     io.Writer
	Level      Level
	Format     Format
	AddCaller  bool
	CallerSkip int
}

// DefaultOptions returns sensible defaults for the logger.
func DefaultOptions() Options {
	return Options{
		Output:    os.Stderr,
		Level:     LevelInfo,
		Format:    FormatJSON,
		AddCaller: true,
	}
}

// New creates a new Logger with the given options.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var enc zapcore.Encoder
	if opts.Format == FormatConsole {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), opts.Level.zapLevel())

	zopts := make([]zap.Option, 0, 2)
	if opts.AddCaller {
		// One frame for the wrapper method below.
		zopts = append(zopts, zap.AddCaller(), zap.AddCallerSkip(1+opts.CallerSkip))
	}

	return &Logger{z: zap.New(core, zopts...), level: opts.Level, opts: opts}
}

// Default creates a logger with default options.
func Default() *Logger {
	return New(DefaultOptions())
}

// OpenSink opens a zap sink: "stdout", "stderr" or a file path, which is
// created if missing and appended to. The returned func releases it.
func OpenSink(path string) (io.Writer, func(), error) {
	ws, closeFn, err := zap.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log sink %q: %w", path, err)
	}
	return ws, closeFn, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{z: zap.NewNop(), level: LevelFatal + 1}
}

// With returns a new Logger with the given fields added.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{z: l.z.With(toZap(fields)...), level: l.level, opts: l.opts}
}

// WithLevel returns a new Logger with the specified minimum log level.
func (l *Logger) WithLevel(level Level) *Logger {
	z := l.z.WithOptions(zap.IncreaseLevel(level.zapLevel()))
	return &Logger{z: z, level: level, opts: l.opts}
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level && l.z.Core().Enabled(level.zapLevel())
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZap(fields)...) }

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...Field) { l.z.Info(msg, toZap(fields)...) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...Field) { l.z.Warn(msg, toZap(fields)...) }

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...Field) { l.z.Error(msg, toZap(fields)...) }

// Fatal logs a fatal message and exits the program.
func (l *Logger) Fatal(msg string, fields ...Field) { l.z.Fatal(msg, toZap(fields)...) }

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) { l.z.Debug(fmt.Sprintf(format, args...)) }

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...any) { l.z.Info(fmt.Sprintf(format, args...)) }

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) { l.z.Warn(fmt.Sprintf(format, args...)) }

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) { l.z.Error(fmt.Sprintf(format, args...)) }

// Context key for logger.
type ctxKey struct{}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context, or returns a no-op logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Nop()
}

// CorrelationIDKey is the field key used to tie log lines to a command.
const CorrelationIDKey = "correlation_id"

// WithCorrelationID returns a logger with the correlation ID field added.
func (l *Logger) WithCorrelationID(id string) *Logger {
	return l.With(String(CorrelationIDKey, id))
}

// Domain helpers.
func PersonID(id string) Field       { return String("person_id", id) }
func CourseCode(code string) Field   { return String("course_code", code) }
func Department(name string) Field   { return String("department", name) }
func Grade(g float64) Field          { return Float64("grade", g) }
func Category(name string) Field     { return String("category", name) }
func Component(name string) Field    { return String("component", name) }
func Operation(name string) Field    { return String("operation", name) }
func Latency(d time.Duration) Field  { return Duration("latency", d) }
func Backend(name string) Field      { return String("backend", name) }
func CacheHit(hit bool) Field        { return Bool("cache_hit", hit) }
func RecordCount(n int) Field        { return Int("records", n) }
