package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "payment-gateway"

var log *zap.Logger

// Init replaces the global logger. level overrides the environment's default
// level when it parses ("debug", "warn", ...).
func Init(env, level string) {
	log = New(env, level)
}

// New builds a logger tagged with the service name and environment.
func New(env, level string) *zap.Logger {
	cfg := configFor(env)
	if lvl, err := zapcore.ParseLevel(level); level != "" && err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	return l.With(zap.String("app", serviceName), zap.String("env", env))
}

func configFor(env string) zap.Config {
	switch env {
	case "production":
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		return cfg
	case "test":
		// keep go test output readable
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		return cfg
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}
}

// L returns the global logger, building one from APP_ENV and LOG_LEVEL on
// first use.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
