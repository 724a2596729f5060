package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Helper to build a sink aimed at an in-memory buffer instead of a real
// destination.
func newBufferSink(t *testing.T, console bool) (*OutputSink, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	return &OutputSink{target: buf, console: console}, buf
}

func TestOutputSink_Write(t *testing.T) {
	rec := LogRecord{
		Timestamp: "2026-01-07 14:30:45",
		Level:     "ERROR",
		Service:   "user-service",
		Message:   "Connection timeout",
	}

	t.Run("console line carries the worker annotation", func(t *testing.T) {
		sink, buf := newBufferSink(t, true)

		require.NoError(t, sink.Write(rec, 0))
		assert.Equal(t, "[2026-01-07 14:30:45] ERROR user-service Connection timeout (worker 0)\n", buf.String())
	})

	t.Run("file line has no worker annotation", func(t *testing.T) {
		sink, buf := newBufferSink(t, false)

		require.NoError(t, sink.Write(rec, 3))
		assert.Equal(t, "[2026-01-07 14:30:45] ERROR user-service Connection timeout\n", buf.String())
	})
}

func TestOutputSink_FileDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	sink := NewOutputSink(path, zap.NewNop())

	rec := LogRecord{Timestamp: "2026-01-07 14:30:45", Level: "INFO", Service: "billing", Message: "charged"}
	require.NoError(t, sink.Write(rec, 1))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2026-01-07 14:30:45] INFO billing charged\n", string(data))
}

func TestOutputSink_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	require.NoError(t, os.WriteFile(path, []byte("existing line\n"), 0o644))

	sink := NewOutputSink(path, zap.NewNop())
	rec := LogRecord{Timestamp: "2026-01-07 14:30:45", Level: "INFO", Service: "billing", Message: "charged"}
	require.NoError(t, sink.Write(rec, 0))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing line\n[2026-01-07 14:30:45] INFO billing charged\n", string(data))
}

func TestOutputSink_FallsBackToConsoleOnOpenFailure(t *testing.T) {
	// parent directory does not exist, so the append open fails
	path := filepath.Join(t.TempDir(), "missing", "out.log")
	sink := NewOutputSink(path, zap.NewNop())

	assert.True(t, sink.console)
	assert.Nil(t, sink.file)
}

func TestOutputSink_ConcurrentWritesDoNotInterleave(t *testing.T) {
	const writers = 8
	const linesPerWriter = 50

	sink, buf := newBufferSink(t, true)

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < linesPerWriter; i++ {
				rec := makeTestRecord(t, id*linesPerWriter+i)
				assert.NoError(t, sink.Write(rec, id))
			}
		}(w)
	}
	wg.Wait()

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))

	lineRe := regexp.MustCompile(`^\[2026-01-07 14:30:45\] INFO svc-\d+ payload \(worker \d+\)$`)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, writers*linesPerWriter)
	for _, line := range lines {
		assert.Regexp(t, lineRe, line)
	}
}
