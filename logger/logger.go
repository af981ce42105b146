// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ------------------- global loggers -------------------

// four logger levels accessible throughout the application
var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
)

var (
	base  *zap.Logger
	level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
)

// ------------------- logger initialization -------------------

// InitLogger creates or reinitializes the logging system. It:
// - Builds a zap core (JSON in production, console otherwise).
// - When logDir is non-empty, also writes to a timestamped file in that directory.
// - Rebinds Info, Warn, Error and Debug as std loggers routed through zap.
func InitLogger(env, logDir string) error {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = level
	cfg.OutputPaths = []string{"stdout"}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return err
		}
		logFileName := filepath.Join(logDir, time.Now().Format("2006-01-02_15-04-05")+".log")
		cfg.OutputPaths = append(cfg.OutputPaths, logFileName)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	return bind(l)
}

// bind points the package loggers at l.
func bind(l *zap.Logger) error {
	std := func(lvl zapcore.Level) (*log.Logger, error) {
		return zap.NewStdLogAt(l, lvl)
	}

	var err error
	if Info, err = std(zapcore.InfoLevel); err != nil {
		return err
	}
	if Warn, err = std(zapcore.WarnLevel); err != nil {
		return err
	}
	if Error, err = std(zapcore.ErrorLevel); err != nil {
		return err
	}
	if Debug, err = std(zapcore.DebugLevel); err != nil {
		return err
	}
	base = l
	return nil
}

// SetLogLevel adjusts the Debug logger's output depending on environment.
// In production debug output is discarded entirely.
func SetLogLevel(env string) {
	if env == "production" {
		level.SetLevel(zapcore.InfoLevel)
		Debug.SetOutput(io.Discard)
	}
}

// L returns the structured logger for key/value logging.
func L() *zap.SugaredLogger {
	return base.Sugar()
}

// Sync flushes any buffered log entries.
func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}

// init gives every package a working console logger before main calls InitLogger,
// so tests never need to touch the filesystem.
func init() {
	if err := InitLogger("development", ""); err != nil {
		log.Fatalf("Failed to initialise custom logger: %v", err)
	}
}
