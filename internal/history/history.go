// Package history keeps the caller-owned, in-process log of past
// summarization results. The log is bounded: once the limit is reached the
// oldest entries are dropped. The orchestrator never touches it.
package history

import "time"

type Entry struct {
	Kind      string // "text", "audio" or "document"
	Source    string // file path, or a snippet for inline text
	Provider  string
	Summary   string
	Succeeded bool
	At        time.Time
}

type Log struct {
	limit   int
	entries []Entry
}

// New creates a Log holding at most limit entries.
func New(limit int) *Log {
	return &Log{limit: limit}
}

// Add appends an entry, evicting the oldest when the log is full.
// A limit of zero disables the log.
func (l *Log) Add(e Entry) {
	if l.limit <= 0 {
		return
	}
	if len(l.entries) == l.limit {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.limit-1]
	}
	l.entries = append(l.entries, e)
}

// Entries returns the log oldest-first. The slice is a copy.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int { return len(l.entries) }
