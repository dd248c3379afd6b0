package main

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

const (
	logDir      = "logs"
	logFileName = "dodge.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging builds the process logger
// With debug off everything is discarded and the returned file is nil
// With debug on, JSON lines go to logs/dodge.log; a file over maxLogSize is rotated to a timestamped name first
// The standard library logger is redirected into the same sink so nothing reaches the terminal
func setupLogging(debug bool) (*zap.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("dodge_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zap.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	zap.RedirectStdLog(logger)
	return logger, f
}
