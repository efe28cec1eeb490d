package format

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatUndecorated(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"known tags stripped", "<info>hi</info>", "hi"},
		{"surrounding text kept", "a <error>boom</error> z", "a boom z"},
		{"close-current form", "<info>hi</> there", "hi there"},
		{"nested tags", "<info>a <comment>b</comment> c</info>", "a b c"},
		{"unknown open tag literal", "<blink>x</blink>", "<blink>x</blink>"},
		{"closing without open literal", "x</info>", "x</info>"},
		{"escaped tag literal", `\<info>not a tag`, "<info>not a tag"},
		{"empty tag literal", "a <> b", "a <> b"},
		{"bare angle bracket", "1 < 2", "1 < 2"},
		{"unterminated tag", "<info", "<info"},
		{"empty message", "", ""},
	}

	f := NewMarkup()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.message))
		})
	}
}

func TestFormatDecoratedKeepsText(t *testing.T) {
	f := NewMarkup()
	f.SetDecorated(true)

	// rendered styling depends on the terminal profile, so assert on
	// the text that survives stripping rather than on escape codes
	got := f.Format("<success>done</success> in 3s")
	assert.Equal(t, "done in 3s", Strip(got))
}

func TestDecoratedRoundTrip(t *testing.T) {
	f := NewMarkup()
	assert.False(t, f.IsDecorated())

	f.SetDecorated(true)
	assert.True(t, f.IsDecorated())

	f.SetDecorated(false)
	assert.False(t, f.IsDecorated())
}

func TestSetStyle(t *testing.T) {
	f := NewMarkup()
	assert.False(t, f.HasStyle("header"))

	f.SetStyle("header", lipgloss.NewStyle().Bold(true))

	assert.True(t, f.HasStyle("header"))
	assert.Equal(t, "Title", f.Format("<header>Title</header>"))
}

func TestBuiltinStyles(t *testing.T) {
	f := NewMarkup()
	for _, name := range []string{"success", "error", "warning", "info", "comment"} {
		assert.True(t, f.HasStyle(name), "missing built-in style %q", name)
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `\<info>`, Escape("<info>"))
	assert.Equal(t, "no markup", Escape("no markup"))

	// escaping survives a round trip through Format
	f := NewMarkup()
	assert.Equal(t, "<info>", f.Format(Escape("<info>")))
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "red", Strip("\x1b[31mred\x1b[0m"))
	assert.Equal(t, "untouched", Strip("untouched"))
}
