package internal

import (
	"sync"

	"go.uber.org/zap"
)

// WorkerPool drains the queue with a fixed number of identical workers. The
// size is set at startup and never changes; workers hold no state beyond
// their id.
type WorkerPool struct {
	size   int
	queue  *RecordQueue
	sink   *OutputSink
	stats  *Stats
	logger *zap.Logger
	wg     sync.WaitGroup
}

func NewWorkerPool(size int, queue *RecordQueue, sink *OutputSink, stats *Stats, logger *zap.Logger) *WorkerPool {
	if size < 1 {
		size = 1
	}
	return &WorkerPool{size: size, queue: queue, sink: sink, stats: stats, logger: logger}
}

// Start launches the workers. They block on Pop right away; Finish on the
// queue is what eventually lets them return.
func (p *WorkerPool) Start() {
	p.wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		go p.run(i)
	}
}

// Wait returns once every worker has observed end of stream and exited.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

func (p *WorkerPool) run(id int) {
	defer p.wg.Done()
	for {
		rec, ok := p.queue.Pop()
		if !ok {
			return
		}
		if err := p.sink.Write(rec, id); err != nil {
			// failed lines are counted and reported, not retried
			p.stats.WriteFailed()
			p.logger.Warn("write failed", zap.Int("worker", id), zap.Error(err))
			continue
		}
		p.stats.Wrote()
	}
}
