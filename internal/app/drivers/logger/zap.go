package logger

import (
	"doctors-portal-service/internal/app/config"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	env := internalConfig.App.Env
	outputPaths, errorOutputPaths := outputsFor(env, driverConfig.Logger)

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(levelFor(driverConfig.Logger.Level)),
		Development:      env == "development",
		Encoding:         encodingFor(env),
		EncoderConfig:    encoderConfigFor(env),
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger.With(zap.String("service", "doctors-portal-service"))
}

func levelFor(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// outputsFor keeps production logs in the configured files only; every other
// environment logs to the terminal.
func outputsFor(env string, loggerConfig config.Logger) ([]string, []string) {
	switch env {
	case "development":
		return []string{"stdout"}, []string{"stderr"}
	case "production":
		return []string{loggerConfig.OutputFileName}, []string{"stderr", loggerConfig.OutputErrorFileName}
	default:
		return []string{"stdout"}, []string{"stderr"}
	}
}

func encodingFor(env string) string {
	if env == "development" {
		return "console"
	}
	return "json"
}

func encoderConfigFor(env string) zapcore.EncoderConfig {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if env == "development" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return encoderConfig
}
