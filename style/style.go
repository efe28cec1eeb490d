// Package style provides opinionated, consistent message helpers on top
// of an output channel. CLI tools use it for a uniform look: successes,
// errors, steps, and verbose-only diagnostics.
package style

import (
	"github.com/wrenkit/wren/format"
	"github.com/wrenkit/wren/output"
)

// Style writes suite-styled messages through an output channel. Message
// text is escaped, so user data cannot inject markup.
type Style struct {
	out *output.Output
}

// New wraps an output channel.
func New(out *output.Output) *Style {
	return &Style{out: out}
}

// Output returns the underlying channel.
func (s *Style) Output() *output.Output {
	return s.out
}

// Success prints a success message with 🔥 and green color.
// Use this for completed operations.
//
// Example:
//
//	st.Success("Created project: myapp")
func (s *Style) Success(msg string) {
	s.println("success", "🔥 "+format.Escape(msg))
}

// Error prints an error message with ❌ and red color.
// Use this for failures that need user attention.
func (s *Style) Error(msg string) {
	s.println("error", "❌ "+format.Escape(msg))
}

// Warning prints a warning message with ⚠️ and yellow color.
func (s *Style) Warning(msg string) {
	s.println("warning", "⚠️  "+format.Escape(msg))
}

// Info prints an informational message with ℹ️ and cyan color.
// Use this for status updates or explanations.
func (s *Style) Info(msg string) {
	s.println("info", "ℹ️  "+format.Escape(msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	st.Step("cd myapp")
//	st.Step("go mod tidy")
func (s *Style) Step(msg string) {
	s.println("comment", "   "+format.Escape(msg))
}

// Verbose prints a debug message with 🔍 only when the channel is at
// Verbose level.
func (s *Style) Verbose(msg string) {
	if !s.out.IsVerbose() {
		return
	}
	s.println("comment", "🔍 "+format.Escape(msg))
}

func (s *Style) println(tag, msg string) {
	// TypeNormal never fails, and console output is fire-and-forget
	_ = s.out.Println("<" + tag + ">" + msg + "</" + tag + ">")
}
