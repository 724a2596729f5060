package internal

import "sync"

// RecordQueue is the handoff between the single reader and the worker pool:
// an unbounded FIFO plus a one-shot finished flag, so workers observe end of
// stream without a sentinel record in the data path.
type RecordQueue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	records  []LogRecord
	finished bool
}

func NewRecordQueue() *RecordQueue {
	q := &RecordQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends one record and wakes a blocked worker. It never blocks the
// caller. Pushing after Finish is a caller error.
func (q *RecordQueue) Push(rec LogRecord) {
	q.mu.Lock()
	q.records = append(q.records, rec)
	q.mu.Unlock()
	q.cond.Signal()
}

// Pop blocks until a record is available or the stream has ended. The second
// return is false only when the queue is empty and Finish has been called;
// records still queued at Finish are all delivered first, in FIFO order.
func (q *RecordQueue) Pop() (LogRecord, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.records) == 0 && !q.finished {
		q.cond.Wait()
	}
	if len(q.records) == 0 {
		return LogRecord{}, false
	}
	rec := q.records[0]
	q.records = q.records[1:]
	return rec, true
}

// Finish marks the end of input and wakes every blocked worker. Idempotent;
// the flag never reverts.
func (q *RecordQueue) Finish() {
	q.mu.Lock()
	q.finished = true
	q.mu.Unlock()
	q.cond.Broadcast()
}
