package main

import (
	"fmt"
	"os"

	"logflow/internal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := internal.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	driver := internal.NewDriver(cfg, logger)
	snap, err := driver.Run()
	logger.Info("ingestion finished",
		zap.Int64("lines_read", snap.LinesRead),
		zap.Int64("records_parsed", snap.Parsed),
		zap.Int64("malformed_skipped", snap.Malformed),
		zap.Int64("records_written", snap.Written),
		zap.Int64("write_failures", snap.WriteFailures),
	)
	if err != nil {
		os.Exit(1)
	}
	fmt.Println("Ingestion complete.")
}

// newLogger builds the diagnostics logger. Diagnostics go to stderr so the
// record stream on stdout stays clean.
func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
