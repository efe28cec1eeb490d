package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalSink writes messages to an io.Writer, typically a terminal
// device. I/O errors are best-effort and ignored, matching the
// fire-and-forget nature of console output.
type TerminalSink struct {
	w io.Writer
}

// NewTerminalSink creates a sink writing to w.
func NewTerminalSink(w io.Writer) *TerminalSink {
	return &TerminalSink{w: w}
}

func (s *TerminalSink) Write(message string, newline bool) {
	if newline {
		fmt.Fprintln(s.w, message)
	} else {
		fmt.Fprint(s.w, message)
	}
}

// Stdout creates an Output on standard output with decoration
// auto-detected. Options may override the detected defaults.
//
// Example:
//
//	out := output.Stdout(output.WithVerbosity(output.Verbose))
//	out.Println("<success>done</success>")
func Stdout(opts ...Option) *Output {
	return file(os.Stdout, opts)
}

// Stderr creates an Output on standard error with decoration
// auto-detected.
func Stderr(opts ...Option) *Output {
	return file(os.Stderr, opts)
}

func file(f *os.File, opts []Option) *Output {
	defaults := []Option{WithDecorated(shouldDecorate(f))}
	return New(NewTerminalSink(f), append(defaults, opts...)...)
}

// shouldDecorate reports whether styled output is appropriate for f:
// the NO_COLOR convention wins, otherwise f must be a terminal.
func shouldDecorate(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
