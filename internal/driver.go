package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Driver owns one ingestion run and is the sole producer. Setup builds the
// shared pieces and starts the pool, feed reads and parses the input, drain
// signals completion and joins every worker.
type Driver struct {
	cfg    *Config
	logger *zap.Logger
	queue  *RecordQueue
	sink   *OutputSink
	pool   *WorkerPool
	stats  *Stats
}

func NewDriver(cfg *Config, logger *zap.Logger) *Driver {
	stats := &Stats{}
	queue := NewRecordQueue()
	sink := NewOutputSink(cfg.OutputPath, logger)
	pool := NewWorkerPool(cfg.WorkerCount, queue, sink, stats, logger)
	return &Driver{
		cfg:    cfg,
		logger: logger,
		queue:  queue,
		sink:   sink,
		pool:   pool,
		stats:  stats,
	}
}

// Run executes the three phases in order. The returned error is non-nil only
// when the input source could not be opened; malformed lines are skipped with
// a diagnostic and never fail the run. Workers are drained and joined on both
// paths, so Run never leaves a goroutine blocked on the queue.
func (d *Driver) Run() (Snapshot, error) {
	defer d.sink.Close()

	d.pool.Start()

	in, err := os.Open(d.cfg.InputPath)
	if err != nil {
		d.logger.Error("unable to open log file",
			zap.String("path", d.cfg.InputPath), zap.Error(err))
		d.drain()
		return d.stats.GetSnapshot(), fmt.Errorf("open input %s: %w", d.cfg.InputPath, err)
	}
	d.feed(in)
	in.Close()

	d.drain()
	return d.stats.GetSnapshot(), nil
}

func (d *Driver) feed(in io.Reader) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		d.stats.LineRead()
		rec, err := ParseLine(line)
		if err != nil {
			d.stats.Skipped()
			d.logger.Warn("skipping malformed line", zap.String("line", line))
			continue
		}
		d.stats.ParsedLine()
		d.queue.Push(rec)
	}
	if err := scanner.Err(); err != nil {
		d.logger.Error("reading input", zap.Error(err))
	}
}

// drain signals end of input and waits for every worker. Finish is idempotent
// so the error path and the normal path can share this.
func (d *Driver) drain() {
	d.queue.Finish()
	d.pool.Wait()
}
