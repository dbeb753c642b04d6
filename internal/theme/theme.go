// Package theme turns the embedded YAML themes into lipgloss styles and
// serves them to the output printer.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"greanium/internal/data/embedded"
	"greanium/internal/logger"
	"greanium/internal/output"
)

// StyleConfig is the YAML form of a single style.
type StyleConfig struct {
	// Foreground is a color string or a {light, dark} pair.
	Foreground interface{} `yaml:"foreground,omitempty"`
	// Background is a color string or a {light, dark} pair.
	Background    interface{} `yaml:"background,omitempty"`
	Bold          *bool       `yaml:"bold,omitempty"`
	Italic        *bool       `yaml:"italic,omitempty"`
	Underline     *bool       `yaml:"underline,omitempty"`
	Strikethrough *bool       `yaml:"strikethrough,omitempty"`
}

// File is the YAML form of a theme.
type File struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description,omitempty"`
	Styles      map[string]StyleConfig `yaml:"styles"`
}

// Theme is a named set of semantic styles. It implements
// output.StyleProvider.
type Theme struct {
	Name        string
	Description string
	styles      map[string]lipgloss.Style
}

var builtin = map[string][]byte{
	"default": embedded.DefaultThemeData,
	"dark":    embedded.DarkThemeData,
	"plain":   embedded.PlainThemeData,
}

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse builds a theme from YAML data.
func Parse(data []byte) (*Theme, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("theme file has no name")
	}

	t := &Theme{
		Name:        file.Name,
		Description: file.Description,
		styles:      make(map[string]lipgloss.Style, len(file.Styles)),
	}
	for semantic, cfg := range file.Styles {
		t.styles[semantic] = createStyle(cfg)
	}
	return t, nil
}

// Load returns the named built-in theme. Unknown names and terminals
// without color support get the plain theme.
func Load(name string) *Theme {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "default"
	}
	if lipgloss.ColorProfile() == termenv.Ascii {
		name = "plain"
	}

	data, ok := builtin[name]
	if !ok {
		logger.Debug("Unknown theme requested, using plain theme", "theme", name, "available", Names())
		data = builtin["plain"]
	}

	t, err := Parse(data)
	if err != nil {
		logger.Error("Failed to load theme", "theme", name, "error", err)
		return &Theme{Name: "plain", styles: map[string]lipgloss.Style{}}
	}
	return t
}

// GetStyle implements output.StyleProvider. Semantics without a configured
// style render unchanged.
func (t *Theme) GetStyle(semantic string) output.TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsAvailable implements output.StyleProvider.
func (t *Theme) IsAvailable() bool {
	return t != nil
}

// Has reports whether the theme configures a style for semantic.
func (t *Theme) Has(semantic string) bool {
	_, ok := t.styles[semantic]
	return ok
}

// Prompt renders the line editor prompt.
func (t *Theme) Prompt(text string) string {
	return t.GetStyle("prompt").Render(text)
}

func createStyle(cfg StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if color := parseColor(cfg.Foreground); color != nil {
		style = style.Foreground(color)
	}
	if color := parseColor(cfg.Background); color != nil {
		style = style.Background(color)
	}
	if cfg.Bold != nil && *cfg.Bold {
		style = style.Bold(true)
	}
	if cfg.Italic != nil && *cfg.Italic {
		style = style.Italic(true)
	}
	if cfg.Underline != nil && *cfg.Underline {
		style = style.Underline(true)
	}
	if cfg.Strikethrough != nil && *cfg.Strikethrough {
		style = style.Strikethrough(true)
	}
	return style
}

// parseColor accepts a color string or a map with light and dark keys.
func parseColor(value interface{}) lipgloss.TerminalColor {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}
