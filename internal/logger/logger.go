package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rxtech-lab/argo-console/internal/console"
	"github.com/rxtech-lab/argo-console/pkg/errors"
)

// Logger wraps the zap logger with additional functionality
type Logger struct {
	*zap.Logger
}

// NewLogger creates a new logger instance with production configuration
func NewLogger() (*Logger, error) {
	return NewLoggerWithLevel("info")
}

// NewLoggerWithLevel creates a production logger writing JSON to stderr at the given level.
// Stdout is left to the console coordinator.
func NewLoggerWithLevel(level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()

	// Keep stdout free for the prompt and log lines
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(lvl)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zapLogger,
	}, nil
}

// NewConsoleLogger creates a logger whose entries are emitted as log
// transactions on c, so they never overwrite the prompt.
func NewConsoleLogger(c *console.Coordinator, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zap.New(console.NewCore(c, lvl)),
	}, nil
}

// ParseLevel parses a zap level name such as "debug" or "warn".
func ParseLevel(level string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(errors.ErrCodeInvalidLogLevel, err, "invalid log level %q", level)
	}

	return lvl, nil
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l.Logger != nil {
		return l.Logger.Sync()
	}

	return nil
}
