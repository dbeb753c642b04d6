package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"greanium/internal/logger"
)

// MarkdownRenderer renders AI replies for the terminal with glamour.
type MarkdownRenderer struct {
	once     sync.Once
	renderer *glamour.TermRenderer
	initErr  error
	style    string
	width    int
}

// NewMarkdownRenderer creates a renderer. style is a glamour style name
// ("dark", "light", "notty", "ascii"); empty detects from the terminal.
func NewMarkdownRenderer(style string, width int) *MarkdownRenderer {
	if width <= 0 {
		width = 80
	}
	return &MarkdownRenderer{style: style, width: width}
}

func (m *MarkdownRenderer) init() error {
	m.once.Do(func() {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(m.width)}
		if m.style == "" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle(m.style))
		}
		m.renderer, m.initErr = glamour.NewTermRenderer(opts...)
		if m.initErr != nil {
			m.initErr = fmt.Errorf("failed to create markdown renderer: %w", m.initErr)
		}
	})
	return m.initErr
}

// Render returns markdown rendered to ANSI text, trimmed of the blank
// margin glamour adds.
func (m *MarkdownRenderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}
	if err := m.init(); err != nil {
		return "", err
	}
	out, err := m.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

// RenderOrRaw renders markdown and falls back to the input on failure.
func (m *MarkdownRenderer) RenderOrRaw(markdown string) string {
	out, err := m.Render(markdown)
	if err != nil {
		logger.Debug("Markdown rendering skipped", "error", err)
		return markdown
	}
	return out
}
