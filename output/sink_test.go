package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf)

	sink.Write("no newline", false)
	sink.Write(" and one more", true)

	assert.Equal(t, "no newline and one more\n", buf.String())
}

func TestBufferSinkFetch(t *testing.T) {
	sink := NewBufferSink()

	sink.Write("first", true)
	sink.Write("second", false)

	assert.Equal(t, "first\nsecond", sink.String())
	assert.Equal(t, "first\nsecond", sink.Fetch())

	// Fetch empties the buffer
	assert.Empty(t, sink.Fetch())
	assert.Empty(t, sink.String())
}

func TestTeeSinkFansOut(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}
	tee := NewTeeSink(a, b)

	tee.Write("msg", true)

	require.Len(t, a.calls, 1)
	require.Len(t, b.calls, 1)
	assert.Equal(t, sinkCall{message: "msg", newline: true}, a.calls[0])
	assert.Equal(t, sinkCall{message: "msg", newline: true}, b.calls[0])
}

func TestPrefixSink(t *testing.T) {
	inner := &recordingSink{}
	sink := NewPrefixSink(inner, "npm | ")

	sink.Write("installed 12 packages", true)

	require.Len(t, inner.calls, 1)
	assert.Equal(t, "npm | installed 12 packages", inner.calls[0].message)
}

func TestNullSinkDiscards(t *testing.T) {
	out := New(NewNullSink())

	// nothing to observe; it must simply not blow up
	require.NoError(t, out.Println("into the void"))
}

func TestLineWriterBuffersPartialLines(t *testing.T) {
	sink := &recordingSink{}
	out := New(sink)
	w := NewLineWriter(out, TypeRaw)

	n, err := w.Write([]byte("par"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Empty(t, sink.calls, "incomplete line must stay buffered")

	n, err = w.Write([]byte("tial\nsecond\ntail"))
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	require.Len(t, sink.calls, 2)
	assert.Equal(t, "partial", sink.calls[0].message)
	assert.Equal(t, "second", sink.calls[1].message)

	require.NoError(t, w.Flush())
	require.Len(t, sink.calls, 3)
	assert.Equal(t, "tail", sink.calls[2].message)

	// flushing twice must not emit an empty line
	require.NoError(t, w.Flush())
	assert.Len(t, sink.calls, 3)
}
