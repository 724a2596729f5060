package internal

import (
	"errors"
	"strings"
)

// ErrMalformedLine is returned for lines with fewer than four fields.
var ErrMalformedLine = errors.New("line has fewer than four fields")

// ParseLine turns one input line into a LogRecord. The expected shape is
// "DATE TIME LEVEL SERVICE MESSAGE..."; the four leading whitespace-delimited
// tokens are mandatory. Everything after the fourth token becomes the message
// with at most one leading space stripped, so intentional extra whitespace in
// the message body survives. Level/service vocabulary and timestamp format are
// not validated here.
func ParseLine(line string) (LogRecord, error) {
	rest := line
	var tokens [4]string
	for i := range tokens {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return LogRecord{}, ErrMalformedLine
		}
		if n := strings.IndexAny(rest, " \t"); n >= 0 {
			tokens[i] = rest[:n]
			rest = rest[n:]
		} else {
			tokens[i] = rest
			rest = ""
		}
	}

	return LogRecord{
		Timestamp: tokens[0] + " " + tokens[1],
		Level:     tokens[2],
		Service:   tokens[3],
		Message:   strings.TrimPrefix(rest, " "),
	}, nil
}
