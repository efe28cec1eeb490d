// Package output provides verbosity-gated, markup-aware console output.
//
// # Overview
//
// An Output is a channel for writing messages to some destination. It
// decides three things per write: whether to emit at all (the verbosity
// gate), how to transform each message (formatted, raw, or plain), and
// where the result goes (a Sink).
//
//	out := output.Stdout()
//	out.Println("<info>Ready.</info>")
//
// # Sinks
//
// The actual emission is delegated to a Sink. TerminalSink writes to an
// io.Writer, BufferSink accumulates for later inspection, NullSink
// discards everything. TeeSink and PrefixSink wrap other sinks.
//
//	buf := output.NewBufferSink()
//	out := output.New(buf)
//	out.Println("captured")
//	got := buf.Fetch()
//
// # Verbosity
//
// Quiet suppresses every write before it reaches the sink. Normal and
// Verbose both emit; the distinction only matters to callers that gate
// their own chatter on IsVerbose.
//
// # Output types
//
// TypeNormal runs each message through the channel's formatter,
// TypeRaw bypasses it, and TypePlain formats and then strips all
// markup and styling, leaving bare text.
package output
