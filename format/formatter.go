package format

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Formatter transforms a message before it reaches a sink.
//
// A formatter owns the decoration flag: when decoration is off, markup
// is stripped rather than rendered. Implementations are not safe for
// concurrent use; callers that share a formatter across goroutines must
// synchronize themselves.
type Formatter interface {
	// Format applies the formatter's markup rules to message.
	Format(message string) string

	// SetDecorated switches between rendering markup as terminal
	// styling (true) and stripping it (false).
	SetDecorated(decorated bool)

	// IsDecorated reports whether markup is rendered as styling.
	IsDecorated() bool
}

// Escape backslash-escapes every markup opener in s so that Format
// treats it as literal text.
func Escape(s string) string {
	return strings.ReplaceAll(s, "<", `\<`)
}

// Strip removes all ANSI escape sequences from s, leaving plain text.
func Strip(s string) string {
	return ansi.Strip(s)
}
