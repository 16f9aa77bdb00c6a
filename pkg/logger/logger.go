package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide structured logger. Init must run before use;
// until then it is a no-op logger so packages can log from tests.
var Log = zap.NewNop().Sugar()

func Init() {
	// JSON encoder for production-ready logging
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build()
	if err != nil {
		zapLogger = zap.NewExample()
	}
	Log = zapLogger.Sugar()
}

// Sync flushes buffered entries. Call on shutdown.
func Sync() {
	_ = Log.Sync()
}
