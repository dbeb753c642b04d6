// Package output renders the Greanium transcript. The Printer applies
// optional styling through a StyleProvider; the Transcript is the append-only
// line log the interpreter writes to.
package output

// StyleProvider is implemented by the theme package to supply styled
// rendering. The output package depends only on this interface.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable reports whether styles can be served. When false the
	// printer falls back to plain text.
	IsAvailable() bool
}

// TextStyle renders a piece of text. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text string) string
}

// SemanticType defines the semantic meaning of a line for consistent styling.
type SemanticType string

const (
	// SemanticPlain is ordinary command output.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo is informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess is success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning is warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError is error text.
	SemanticError SemanticType = "error"
	// SemanticCommand is the echo of a submitted line.
	SemanticCommand SemanticType = "command"
	// SemanticHighlight is emphasized text such as the welcome banner.
	SemanticHighlight SemanticType = "highlight"
	// SemanticBold is bold text.
	SemanticBold SemanticType = "bold"
	// SemanticPending is a placeholder shown while an async command runs.
	SemanticPending SemanticType = "pending"
)
