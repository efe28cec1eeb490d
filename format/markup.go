package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Markup is the default Formatter. It understands inline tags of the
// form <name>...</name>, plus </> which closes the most recent tag.
// Tags may nest; the innermost style wins. Anything that does not parse
// as a tag, or names a style that was never registered, passes through
// verbatim.
type Markup struct {
	decorated bool
	styles    map[string]lipgloss.Style
}

// NewMarkup creates a formatter with the built-in styles
// (success, error, warning, info, comment). Decoration starts off.
func NewMarkup() *Markup {
	return &Markup{styles: defaultStyles()}
}

func defaultStyles() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"success": lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true),
		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
		"info":    lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")),
		"comment": lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// SetDecorated switches markup rendering on or off.
func (m *Markup) SetDecorated(decorated bool) {
	m.decorated = decorated
}

// IsDecorated reports whether markup is rendered as terminal styling.
func (m *Markup) IsDecorated() bool {
	return m.decorated
}

// SetStyle registers (or replaces) the style rendered for <name> tags.
func (m *Markup) SetStyle(name string, style lipgloss.Style) {
	m.styles[name] = style
}

// HasStyle reports whether a style is registered under name.
func (m *Markup) HasStyle(name string) bool {
	_, ok := m.styles[name]
	return ok
}

type openTag struct {
	name  string
	style lipgloss.Style
}

// Format renders message. Registered tags become lipgloss styling when
// decoration is on and disappear when it is off; the text between them
// is always kept. A backslash before '<' escapes it.
func (m *Markup) Format(message string) string {
	var out strings.Builder
	var text strings.Builder
	var stack []openTag

	// flush renders the pending text run with the innermost open style
	flush := func() {
		if text.Len() == 0 {
			return
		}
		run := text.String()
		text.Reset()
		if m.decorated && len(stack) > 0 {
			run = stack[len(stack)-1].style.Render(run)
		}
		out.WriteString(run)
	}

	for i := 0; i < len(message); i++ {
		c := message[i]
		if c == '\\' && i+1 < len(message) && message[i+1] == '<' {
			text.WriteByte('<')
			i++
			continue
		}
		if c != '<' {
			text.WriteByte(c)
			continue
		}
		name, closing, width := parseTag(message[i:])
		if width == 0 {
			text.WriteByte(c)
			continue
		}
		if closing {
			if idx := lastOpen(stack, name); idx >= 0 {
				flush()
				stack = stack[:idx]
			} else {
				// closing tag with nothing open: literal text
				text.WriteString(message[i : i+width])
			}
			i += width - 1
			continue
		}
		if style, ok := m.styles[name]; ok {
			flush()
			stack = append(stack, openTag{name: name, style: style})
		} else {
			text.WriteString(message[i : i+width])
		}
		i += width - 1
	}
	flush()
	return out.String()
}

// parseTag reads a tag at the start of s and returns its name, whether
// it is a closing tag, and its width in bytes. A width of 0 means s
// does not start with a well-formed tag.
func parseTag(s string) (name string, closing bool, width int) {
	j := 1 // s[0] is '<'
	if j < len(s) && s[j] == '/' {
		closing = true
		j++
	}
	start := j
	for j < len(s) && isTagChar(s[j]) {
		j++
	}
	if j >= len(s) || s[j] != '>' {
		return "", false, 0
	}
	name = s[start:j]
	if name == "" && !closing {
		// "<>" is literal text
		return "", false, 0
	}
	return name, closing, j + 1
}

func isTagChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// lastOpen returns the index of the most recent open tag matching name.
// An empty name (the "</>" form) matches the top of the stack.
func lastOpen(stack []openTag, name string) int {
	if name == "" {
		return len(stack) - 1
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].name == name {
			return i
		}
	}
	return -1
}
