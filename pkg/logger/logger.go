package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It discards everything until Init is called.
var Log = zap.NewNop()

// Init builds the process logger. Debug mode logs everything to stderr with
// coloured levels; otherwise logging is silenced so that only the report
// reaches the terminal.
func Init(debug bool) {
	var (
		config zap.Config
		err    error
	)

	if debug {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.FatalLevel + 1)
	}

	Log, err = config.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
}

func SetLogger(l *zap.Logger) {
	Log = l
}

func GetLogger() *zap.Logger {
	if Log == nil {
		Init(false)
	}
	return Log
}

// WithField returns a child logger tagged with a single field.
func WithField(key string, value interface{}) *zap.Logger {
	return GetLogger().With(zap.Any(key, value))
}

// Sync flushes buffered entries. Errors are ignored because stderr cannot be
// synced on some platforms.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
