package output

import (
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// EchoPrefix starts the echo line of a submitted command.
const EchoPrefix = "> "

// Sink receives transcript lines. Implementations are driven from a single
// goroutine, the interpreter's event loop.
type Sink interface {
	Append(line string)
	Clear()
}

// StyledSink is a Sink that also accepts an explicit semantic for a line.
type StyledSink interface {
	Sink
	AppendAs(semantic SemanticType, line string)
}

// Emit appends a line with the given semantic when the sink supports it and
// falls back to a plain Append otherwise.
func Emit(sink Sink, semantic SemanticType, line string) {
	if styled, ok := sink.(StyledSink); ok {
		styled.AppendAs(semantic, line)
		return
	}
	sink.Append(line)
}

// Entry is one transcript line with the semantic it was rendered with.
type Entry struct {
	Text     string
	Semantic SemanticType
}

// Transcript is the append-only line log shown to the user. Each appended
// line is rendered immediately, so the terminal's own scrolling keeps the
// newest line in view.
type Transcript struct {
	mu      sync.Mutex
	entries []Entry
	printer *Printer
}

// NewTranscript creates a transcript rendering through printer. A nil
// printer keeps the transcript in memory only.
func NewTranscript(printer *Printer) *Transcript {
	if printer == nil {
		printer = NewPrinter(Silent())
	}
	return &Transcript{printer: printer}
}

// Append adds a plain line.
func (t *Transcript) Append(line string) {
	t.AppendAs(SemanticPlain, line)
}

// AppendAs adds a line rendered with an explicit semantic.
func (t *Transcript) AppendAs(semantic SemanticType, line string) {
	t.mu.Lock()
	t.entries = append(t.entries, Entry{Text: line, Semantic: semantic})
	t.mu.Unlock()

	t.printer.Line(semantic, line)
}

// Clear drops every entry and wipes the screen.
func (t *Transcript) Clear() {
	t.mu.Lock()
	t.entries = nil
	t.mu.Unlock()

	t.printer.Raw(ansi.EraseEntireScreen + ansi.CursorHomePosition)
}

// Entries returns a copy of the transcript entries.
func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lines returns the transcript text in order.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	lines := make([]string, len(t.entries))
	for i, e := range t.entries {
		lines[i] = e.Text
	}
	return lines
}

// PlainLines returns the transcript text with ANSI sequences removed. Reply
// text from chat providers may carry escape codes.
func (t *Transcript) PlainLines() []string {
	lines := t.Lines()
	for i, line := range lines {
		lines[i] = ansi.Strip(line)
	}
	return lines
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
