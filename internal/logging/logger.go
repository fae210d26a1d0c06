package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	Level   string // debug, info, warn, error
	File    string // optional JSON log file
	Console bool   // human-readable output on stderr
}

// New builds a zap logger writing to the console, a JSON file, or both.
// With neither sink enabled it returns a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
		}
	}

	var cores []zapcore.Core

	if opts.Console {
		consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
		consoleEncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}

	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("logging: creating log directory: %w", err)
			}
		}
		logFile, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("logging: opening log file: %w", err)
		}

		fileEncoderConfig := zap.NewProductionEncoderConfig()
		fileEncoderConfig.TimeKey = "timestamp"
		fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig),
			zapcore.AddSync(logFile),
			zapcore.DebugLevel,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
