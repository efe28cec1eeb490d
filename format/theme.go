package format

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme is a set of named styles loaded from YAML. The expected shape:
//
//	styles:
//	  header:
//	    foreground: "99"
//	    bold: true
//	  muted:
//	    foreground: "240"
type Theme struct {
	Styles map[string]StyleSpec `yaml:"styles"`
}

// StyleSpec describes one style. Colors accept anything lipgloss does:
// ANSI names ("red"), 256-color indexes ("240"), or hex ("#ff5faf").
type StyleSpec struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Bold       bool   `yaml:"bold"`
	Italic     bool   `yaml:"italic"`
	Underline  bool   `yaml:"underline"`
}

// LoadTheme reads and parses a YAML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme parses YAML theme data.
func ParseTheme(data []byte) (*Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme YAML: %w", err)
	}
	return &theme, nil
}

// Apply registers every style in the theme on m, replacing built-ins
// that share a name.
func (t *Theme) Apply(m *Markup) {
	for name, spec := range t.Styles {
		m.SetStyle(name, spec.style())
	}
}

func (s StyleSpec) style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	return style
}
