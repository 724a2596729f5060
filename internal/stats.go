package internal

import "sync/atomic"

// Stats collects ingestion counters shared by the driver and the workers.
type Stats struct {
	linesRead     atomic.Int64
	parsed        atomic.Int64
	malformed     atomic.Int64
	written       atomic.Int64
	writeFailures atomic.Int64
}

// Snapshot is a point-in-time copy of the counters, reported once ingestion
// finishes.
type Snapshot struct {
	LinesRead     int64
	Parsed        int64
	Malformed     int64
	Written       int64
	WriteFailures int64
}

func (s *Stats) LineRead()    { s.linesRead.Add(1) }
func (s *Stats) ParsedLine()  { s.parsed.Add(1) }
func (s *Stats) Skipped()     { s.malformed.Add(1) }
func (s *Stats) Wrote()       { s.written.Add(1) }
func (s *Stats) WriteFailed() { s.writeFailures.Add(1) }

func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		LinesRead:     s.linesRead.Load(),
		Parsed:        s.parsed.Load(),
		Malformed:     s.malformed.Load(),
		Written:       s.written.Load(),
		WriteFailures: s.writeFailures.Load(),
	}
}
