package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger used by the runtime entry point.
// Packages below the entry point receive a *zap.Logger explicitly.
var Log *zap.Logger = zap.NewNop()

// Init builds the development logger and installs it as Log.
func Init() {
	l, err := New(false)
	if err != nil {
		return
	}
	Log = l
}

// New returns a console logger. Debug lowers the level to debug.
func New(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return cfg.Build()
}

// SetDebug rebuilds Log at debug level.
func SetDebug(debug bool) {
	l, err := New(debug)
	if err != nil {
		Log.Warn("Could not rebuild logger", zap.Error(err))
		return
	}
	Log = l
}
