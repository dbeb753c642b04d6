package output

import (
	"io"
	"os"
	"strings"
	"sync"
)

// Printer writes rendered lines to a terminal. Styling is optional and comes
// from an injected StyleProvider.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	forcePlain    bool
	testMode      bool
	silent        bool
	prefix        string

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default it writes unstyled lines to os.Stdout.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{writer: os.Stdout}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Println outputs text followed by a newline.
func (p *Printer) Println(text string) {
	p.Line(SemanticPlain, text)
}

// Line outputs one line with the given semantic styling.
func (p *Printer) Line(semantic SemanticType, text string) {
	if p.silent {
		return
	}

	result := text
	if p.IsStylable() {
		result = p.styleProvider.GetStyle(string(semantic)).Render(text)
	}
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.writer, p.prefix+result)
}

// Raw writes control sequences straight through, bypassing styling and prefix.
func (p *Printer) Raw(seq string) {
	if p.silent || p.testMode {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.writer, seq)
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}
