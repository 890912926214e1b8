package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the zap encoder and level.
type Config struct {
	IsDevelopment bool
	Encoding      string
	Level         string
}

// New builds the application logger. Development mode switches to the
// console encoder at debug level regardless of Encoding/Level.
func New(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsDevelopment {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
		if cfg.Encoding != "" {
			zc.Encoding = cfg.Encoding
		}
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			lvl = zapcore.InfoLevel
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}
