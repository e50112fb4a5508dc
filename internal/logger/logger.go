// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package logger builds the zap logger used by the apix command.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogama/apix/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func consoleEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	return encoderConfig
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return encoderConfig
}

// New builds a zap logger from cfg. Logs go to stderr, since stdout
// carries the command's result, unless cfg names an output file.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %v", err)
	}

	var encoderConfig zapcore.EncoderConfig
	switch cfg.Format {
	case "json":
		encoderConfig = jsonEncoderConfig()
	case "console", "":
		cfg.Format = "console"
		encoderConfig = consoleEncoderConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %q", cfg.Format)
	}

	outputPaths := []string{"stderr"}
	if cfg.OutputPath != "" {
		dir := filepath.Dir(cfg.OutputPath)
		if dir != "." && dir != "" {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		outputPaths = []string{cfg.OutputPath}
		if cfg.Format == "console" {
			encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Format == "console",
		Encoding:         cfg.Format,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderConfig,
	}

	logger, err := zapConfig.Build(zap.AddStacktrace(zapcore.FatalLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %v", err)
	}

	return logger, nil
}
