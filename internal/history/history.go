// Package history keeps the lines submitted during a terminal session and a
// cursor for arrow-key navigation. Nothing is persisted.
package history

import "sync"

// Buffer is an append-only list of submitted lines with a navigation cursor.
// The cursor ranges over [0, Len()]; Len() means "past the newest entry",
// where the edit line is blank.
type Buffer struct {
	mu      sync.Mutex
	entries []string
	cursor  int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Record appends line verbatim, duplicates included, and moves the cursor
// past the newest entry.
func (b *Buffer) Record(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, line)
	b.cursor = len(b.entries)
}

// Previous moves one entry back and returns it. At the oldest entry it stays
// put and returns that entry again. An empty buffer returns "".
func (b *Buffer) Previous() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) == 0 {
		return ""
	}
	if b.cursor > 0 {
		b.cursor--
	}
	return b.entries[b.cursor]
}

// Next moves one entry forward and returns it. Stepping past the newest
// entry returns "" and further calls stay there.
func (b *Buffer) Next() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cursor >= len(b.entries)-1 {
		b.cursor = len(b.entries)
		return ""
	}
	b.cursor++
	return b.entries[b.cursor]
}

// Entries returns a copy of the recorded lines, oldest first.
func (b *Buffer) Entries() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of recorded lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Cursor returns the current navigation position.
func (b *Buffer) Cursor() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursor
}
