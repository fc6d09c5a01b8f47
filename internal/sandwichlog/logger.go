// Package sandwichlog builds the structured zap logger shared by the
// generator, MCTS driver, and CLI — grounded on the thin-wrapper pattern
// in the teacher's crypto-wallet/pkg/logger/logger.go, trimmed of its
// file-rotation (lumberjack) path since nothing in this CLI writes
// long-lived rotating log files.
package sandwichlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps *zap.Logger so callers can depend on this package's type
// instead of zap's directly.
type Logger struct {
	*zap.Logger
}

// New builds a structured logger. development selects human-readable
// console output; otherwise JSON-to-stdout suitable for piping.
func New(development bool, levelName string) (*Logger, error) {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.StacktraceKey = "stacktrace"

	level, err := zapcore.ParseLevel(levelNameOrDefault(levelName))
	if err != nil {
		return nil, err
	}
	config.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{zapLogger}, nil
}

// With returns a logger with the given fields attached.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l.Logger.With(fields...)}
}

// Named returns a logger with the given name attached.
func (l *Logger) Named(name string) *Logger {
	return &Logger{l.Logger.Named(name)}
}

// Nop returns a logger that discards everything, for tests and callers
// that don't care about output.
func Nop() *Logger {
	return &Logger{zap.NewNop()}
}

func levelNameOrDefault(levelName string) string {
	if levelName == "" {
		return "info"
	}
	return levelName
}
