package output

// Sink is the single delegation point where messages leave an Output.
// Concrete sinks decide what "emit" means: a terminal, a buffer, or
// nothing at all. Sinks receive already-transformed text and must not
// inspect or re-format it.
type Sink interface {
	Write(message string, newline bool)
}

// NullSink discards every message.
type NullSink struct{}

// NewNullSink returns a sink that swallows all output.
func NewNullSink() *NullSink {
	return &NullSink{}
}

func (*NullSink) Write(string, bool) {}

// TeeSink duplicates every message to several sinks, in order.
type TeeSink struct {
	sinks []Sink
}

// NewTeeSink creates a sink that fans out to all given sinks.
func NewTeeSink(sinks ...Sink) *TeeSink {
	return &TeeSink{sinks: sinks}
}

func (t *TeeSink) Write(message string, newline bool) {
	for _, s := range t.sinks {
		s.Write(message, newline)
	}
}

// PrefixSink prepends a fixed prefix to every message before passing it
// on to the wrapped sink.
type PrefixSink struct {
	sink   Sink
	prefix string
}

// NewPrefixSink wraps sink so that each message starts with prefix.
func NewPrefixSink(sink Sink, prefix string) *PrefixSink {
	return &PrefixSink{sink: sink, prefix: prefix}
}

func (p *PrefixSink) Write(message string, newline bool) {
	p.sink.Write(p.prefix+message, newline)
}
