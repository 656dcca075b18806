package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger used across the router.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
	Sync() error
}

type loggerImpl struct {
	zapLogger *zap.Logger
}

var _ Logger = (*loggerImpl)(nil)

// NewLogger creates a zap backed logger.
// If fileName is non-empty, logs are written to that file in addition to stdout.
// Returns error if the level cannot be parsed or the logger fails to build.
func NewLogger(isProduction bool, fileName string, logLevel string) (Logger, error) {
	var config zap.Config
	if isProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if logLevel != "" {
		level, err := zap.ParseAtomicLevel(logLevel)
		if err != nil {
			return nil, err
		}
		config.Level = level
	}

	config.OutputPaths = []string{"stdout"}
	if fileName != "" {
		config.OutputPaths = append(config.OutputPaths, fileName)
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &loggerImpl{zapLogger: zapLogger}, nil
}

// Debug implements Logger.
func (l *loggerImpl) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

// Info implements Logger.
func (l *loggerImpl) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

// Warn implements Logger.
func (l *loggerImpl) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

// Error implements Logger.
func (l *loggerImpl) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

// Fatal implements Logger.
func (l *loggerImpl) Fatal(msg string, fields ...zap.Field) {
	l.zapLogger.Fatal(msg, fields...)
}

// Sync implements Logger.
func (l *loggerImpl) Sync() error {
	return l.zapLogger.Sync()
}

// NoOpLogger discards everything. Used in tests.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (*NoOpLogger) Debug(msg string, fields ...zap.Field) {}

func (*NoOpLogger) Info(msg string, fields ...zap.Field) {}

func (*NoOpLogger) Warn(msg string, fields ...zap.Field) {}

func (*NoOpLogger) Error(msg string, fields ...zap.Field) {}

func (*NoOpLogger) Fatal(msg string, fields ...zap.Field) {}

func (*NoOpLogger) Sync() error { return nil }
