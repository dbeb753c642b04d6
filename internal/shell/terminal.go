package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"greanium/internal/history"
	"greanium/internal/logger"
)

// Private-use runes that stand in for the arrow keys, so readline's own
// history (and its bell) never sees them.
const (
	keyHistoryPrev rune = 0xE000
	keyHistoryNext rune = 0xE001
)

// PromptFunc renders the prompt for the active view.
type PromptFunc func(view string) string

// DefaultPrompt renders "greanium:<view>> ".
func DefaultPrompt(view string) string {
	if view == "" {
		return "greanium> "
	}
	return fmt.Sprintf("greanium:%s> ", view)
}

// TerminalOptions configures the line editor.
type TerminalOptions struct {
	History *history.Buffer
	// Completer offers tab completion. Nil disables it.
	Completer readline.AutoCompleter
	Prompt    PromptFunc
	View      string
	Stdin     io.ReadCloser
	Stdout    io.Writer
}

// Terminal is the interactive line editor.
type Terminal struct {
	rl      *readline.Instance
	prompt  PromptFunc
	history *history.Buffer
	log     *log.Logger

	closed    chan struct{}
	closeOnce sync.Once
}

// NewTerminal creates the line editor. Arrow up and down walk the given
// history buffer.
func NewTerminal(opts TerminalOptions) (*Terminal, error) {
	if opts.History == nil {
		opts.History = history.New()
	}
	if opts.Prompt == nil {
		opts.Prompt = DefaultPrompt
	}

	cfg := &readline.Config{
		Prompt:                 opts.Prompt(opts.View),
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		AutoComplete:           opts.Completer,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		FuncFilterInputRune:    filterHistoryKeys,
		Listener:               &historyListener{history: opts.History},
	}
	if opts.Stdin != nil {
		cfg.Stdin = opts.Stdin
	}
	if opts.Stdout != nil {
		cfg.Stdout = opts.Stdout
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create line editor: %w", err)
	}
	rl.HistoryDisable()

	return &Terminal{
		rl:      rl,
		prompt:  opts.Prompt,
		history: opts.History,
		log:     logger.NewStyledLogger("Terminal"),
		closed:  make(chan struct{}),
	}, nil
}

// Writer returns a writer that prints above the prompt and redraws it.
func (t *Terminal) Writer() io.Writer {
	return t.rl.Stdout()
}

// ErrWriter is Writer for the error stream.
func (t *Terminal) ErrWriter() io.Writer {
	return t.rl.Stderr()
}

// SetView updates the prompt for view.
func (t *Terminal) SetView(view string) {
	t.rl.SetPrompt(t.prompt(view))
	t.rl.Refresh()
}

// ReadLines reads lines until EOF, a second consecutive interrupt at an
// empty prompt, or Close. The channel is closed when reading stops.
func (t *Terminal) ReadLines() <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		interrupts := 0
		for {
			line, err := t.rl.Readline()
			switch {
			case err == nil:
				interrupts = 0
				select {
				case lines <- line:
				case <-t.closed:
					return
				}
			case errors.Is(err, readline.ErrInterrupt):
				if strings.TrimSpace(line) != "" {
					interrupts = 0
					continue
				}
				interrupts++
				if interrupts >= 2 {
					return
				}
			case errors.Is(err, io.EOF):
				return
			default:
				t.log.Debug("Line editor stopped", "error", err)
				return
			}
		}
	}()
	return lines
}

// Close restores the terminal and stops ReadLines.
func (t *Terminal) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.closed)
		err = t.rl.Close()
	})
	return err
}

// filterHistoryKeys swaps the arrow keys for private sentinels.
func filterHistoryKeys(r rune) (rune, bool) {
	switch r {
	case readline.CharPrev:
		return keyHistoryPrev, true
	case readline.CharNext:
		return keyHistoryNext, true
	}
	return r, true
}

// historyListener replaces the edit buffer from the history buffer when a
// sentinel arrives.
type historyListener struct {
	history *history.Buffer
}

// OnChange implements readline.Listener.
func (l *historyListener) OnChange(line []rune, pos int, key rune) ([]rune, int, bool) {
	var entry string
	switch key {
	case keyHistoryPrev:
		if l.history.Len() == 0 {
			kept := stripSentinels(line)
			return kept, min(max(pos-1, 0), len(kept)), true
		}
		entry = l.history.Previous()
	case keyHistoryNext:
		entry = l.history.Next()
	default:
		return line, pos, false
	}
	replaced := []rune(entry)
	return replaced, len(replaced), true
}

func stripSentinels(line []rune) []rune {
	out := make([]rune, 0, len(line))
	for _, r := range line {
		if r == keyHistoryPrev || r == keyHistoryNext {
			continue
		}
		out = append(out, r)
	}
	return out
}
