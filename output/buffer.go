package output

import "bytes"

// BufferSink accumulates messages in memory. Useful for tests and for
// deferring output until a command finishes.
type BufferSink struct {
	buf bytes.Buffer
}

// NewBufferSink creates an empty buffer sink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (s *BufferSink) Write(message string, newline bool) {
	s.buf.WriteString(message)
	if newline {
		s.buf.WriteByte('\n')
	}
}

// Fetch returns everything written so far and empties the buffer.
func (s *BufferSink) Fetch() string {
	out := s.buf.String()
	s.buf.Reset()
	return out
}

// String returns the buffered content without consuming it.
func (s *BufferSink) String() string {
	return s.buf.String()
}
