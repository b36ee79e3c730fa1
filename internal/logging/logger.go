// Package logging builds the service logger. Console output is always on;
// LOG_FILE adds a rotated JSON file sink.
package logging

import (
	"os"
	"strings"

	"github.com/blaisecz/dailyform-tracker/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileMaxSizeMB  = 100
	fileMaxBackups = 30
	fileMaxAgeDays = 90
)

// New creates a zap logger from configuration.
func New(cfg *config.Config) *zap.Logger {
	level := ParseLevel(cfg.LogLevel)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var consoleEncoder zapcore.Encoder
	if cfg.IsProduction() {
		consoleEncoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		consoleEncoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level),
	}

	if cfg.LogFile != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    fileMaxSizeMB,
				MaxBackups: fileMaxBackups,
				MaxAge:     fileMaxAgeDays,
				LocalTime:  true,
			}),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("service", "dailyform-api"), zap.String("env", cfg.AppEnv))
}

// ParseLevel maps LOG_LEVEL values to zap levels, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
