package output

import "strings"

// LineWriter adapts an Output to io.Writer for callers that stream
// bytes, such as exec.Cmd stdout. Partial lines are buffered until a
// newline arrives; each complete line goes through the channel as one
// message.
type LineWriter struct {
	out *Output
	t   Type
	// Buffer for incomplete lines
	buffer []byte
}

// NewLineWriter creates a writer emitting complete lines through out
// with the given output type.
func NewLineWriter(out *Output, t Type) *LineWriter {
	return &LineWriter{
		out:    out,
		t:      t,
		buffer: make([]byte, 0),
	}
}

// Write buffers p and emits every complete line it now holds.
func (w *LineWriter) Write(p []byte) (n int, err error) {
	w.buffer = append(w.buffer, p...)

	lines := strings.Split(string(w.buffer), "\n")

	// Keep the last incomplete line in the buffer
	w.buffer = []byte(lines[len(lines)-1])
	lines = lines[:len(lines)-1]

	for _, line := range lines {
		if err := w.out.Writeln(w.t, line); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}

// Flush emits any remaining buffered content as a final line.
func (w *LineWriter) Flush() error {
	if len(w.buffer) == 0 {
		return nil
	}
	line := string(w.buffer)
	w.buffer = w.buffer[:0]
	return w.out.Writeln(w.t, line)
}
