package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's sugared logger with the alternating key-value style
// used across the service.
type Logger struct {
	*zap.SugaredLogger
}

// Production returns an INFO-level JSON logger for deployed environments.
func Production() *Logger {
	return New(false)
}

// Development returns a DEBUG-level logger with colored console output.
func Development() *Logger {
	return New(true)
}

// New builds a logger. debug selects the development encoder and DEBUG level.
func New(debug bool) *Logger {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.StacktraceKey = "stacktrace"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	base, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1), // report the wrapper's caller, not the wrapper
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		base = zap.NewExample()
	}

	return &Logger{SugaredLogger: base.Sugar()}
}

// NewFromEnv builds a logger honoring the DEBUG_MODE environment variable.
func NewFromEnv() *Logger {
	debug := os.Getenv("DEBUG_MODE") == "true" || os.Getenv("DEBUG_MODE") == "1"
	return New(debug)
}

// WithFields returns a logger that attaches the given key-value fields to
// every entry.
func (l *Logger) WithFields(fields ...any) *Logger {
	return &Logger{SugaredLogger: l.With(fields...)}
}

// WithError returns a logger with the error attached as a field.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return &Logger{SugaredLogger: l.With("error", err.Error())}
}

// Debug logs a debug-level message with optional key-value fields.
func (l *Logger) Debug(msg string, fields ...any) {
	l.Debugw(msg, fields...)
}

// Info logs an info-level message with optional key-value fields.
func (l *Logger) Info(msg string, fields ...any) {
	l.Infow(msg, fields...)
}

// Warn logs a warning-level message with optional key-value fields.
func (l *Logger) Warn(msg string, fields ...any) {
	l.Warnw(msg, fields...)
}

// Error logs an error-level message with optional key-value fields and a
// stack trace.
func (l *Logger) Error(msg string, fields ...any) {
	l.Errorw(msg, fields...)
}

// Fatal logs the message and exits.
func (l *Logger) Fatal(msg string, fields ...any) {
	l.Fatalw(msg, fields...)
}
