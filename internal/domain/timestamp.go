package domain

import "time"

// Timestamp is an ISO-8601 instant kept as text.
//
// Values loaded from older snapshots are preserved verbatim even when they do
// not parse, so a round trip never rewrites history.
type Timestamp string

// NewTimestamp formats t the way every writer in this module does
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(time.RFC3339Nano))
}

// Time parses the timestamp. ok is false for empty or foreign formats.
func (t Timestamp) Time() (time.Time, bool) {
	if t == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339Nano, string(t))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// String implements fmt.Stringer
func (t Timestamp) String() string {
	return string(t)
}

// Clock returns the current time. Tests replace it with a fixed sequence.
type Clock func() time.Time

// Display formats the timestamp as a calendar date, or returns the raw text
// when it does not parse
func (t Timestamp) Display() string {
	parsed, ok := t.Time()
	if !ok {
		return string(t)
	}
	return parsed.Format("2006/01/02")
}
