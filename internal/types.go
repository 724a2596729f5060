package internal

// LogRecord is one parsed line of input. Records are plain values: the driver
// hands one to the queue, a worker takes it out, nothing is shared in between.
type LogRecord struct {
	Timestamp string // date and time tokens rejoined, "YYYY-MM-DD HH:MM:SS"
	Level     string
	Service   string
	Message   string // rest of the line, may be empty
}
