package internal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

// OutputSink serializes every worker's writes into a single destination. The
// destination is chosen once at construction: the configured file opened in
// append mode, or the console when no path is set or the open fails.
type OutputSink struct {
	mu      sync.Mutex
	target  io.Writer
	console bool
	file    *os.File
}

// NewOutputSink opens path for appending; an empty path or a failed open
// selects the console. The fallback is decided here, never per write.
func NewOutputSink(path string, logger *zap.Logger) *OutputSink {
	s := &OutputSink{target: os.Stdout, console: true}
	if path == "" {
		return s
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("unable to open output file, falling back to console",
			zap.String("path", path), zap.Error(err))
		return s
	}
	s.target = f
	s.console = false
	s.file = f
	return s
}

// Write emits one record as a single atomic line; the targets are unbuffered
// so the line has reached the destination when Write returns. Console output
// carries the worker annotation, file output stays stable for downstream
// consumers.
func (s *OutputSink) Write(rec LogRecord, workerID int) error {
	line := fmt.Sprintf("[%s] %s %s %s", rec.Timestamp, rec.Level, rec.Service, rec.Message)
	if s.console {
		line = fmt.Sprintf("%s (worker %d)", line, workerID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.target, line+"\n")
	return err
}

// Close releases the file handle on normal exit. Console sinks need no
// cleanup.
func (s *OutputSink) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}
