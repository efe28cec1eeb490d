package output

import (
	"errors"
	"fmt"

	"github.com/wrenkit/wren/format"
)

// ErrInvalidType is returned by Write when the output type is not one
// of TypeNormal, TypeRaw, or TypePlain.
var ErrInvalidType = errors.New("invalid output type")

// Output writes messages to a Sink, gated by verbosity and transformed
// by a Formatter. It is not safe for concurrent use; callers sharing an
// Output (or replacing its formatter) across goroutines must
// synchronize themselves.
type Output struct {
	verbosity Verbosity
	formatter format.Formatter
	sink      Sink
}

type config struct {
	verbosity Verbosity
	decorated bool
	formatter format.Formatter
}

// Option configures an Output at construction time.
type Option func(*config)

// WithVerbosity sets the initial verbosity level.
func WithVerbosity(v Verbosity) Option {
	return func(c *config) { c.verbosity = v }
}

// WithDecorated sets the initial decoration flag. It is propagated into
// the formatter, supplied or default.
func WithDecorated(decorated bool) Option {
	return func(c *config) { c.decorated = decorated }
}

// WithFormatter supplies the formatter instead of the default Markup one.
func WithFormatter(f format.Formatter) Option {
	return func(c *config) { c.formatter = f }
}

// New creates an Output writing to sink. Defaults: verbosity Normal,
// decoration off, a fresh Markup formatter.
func New(sink Sink, opts ...Option) *Output {
	cfg := config{verbosity: Normal}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.formatter == nil {
		cfg.formatter = format.NewMarkup()
	}
	cfg.formatter.SetDecorated(cfg.decorated)
	return &Output{
		verbosity: cfg.verbosity,
		formatter: cfg.formatter,
		sink:      sink,
	}
}

// SetFormatter replaces the channel's formatter. The reference is
// shared, not copied.
func (o *Output) SetFormatter(f format.Formatter) {
	o.formatter = f
}

// Formatter returns the channel's current formatter.
func (o *Output) Formatter() format.Formatter {
	return o.formatter
}

// SetDecorated delegates to the formatter's decoration flag.
func (o *Output) SetDecorated(decorated bool) {
	o.formatter.SetDecorated(decorated)
}

// IsDecorated reports the formatter's decoration flag.
func (o *Output) IsDecorated() bool {
	return o.formatter.IsDecorated()
}

// SetVerbosity stores the verbosity level as given, without range
// checks. Any value other than Quiet emits.
func (o *Output) SetVerbosity(v Verbosity) {
	o.verbosity = v
}

// Verbosity returns the current verbosity level.
func (o *Output) Verbosity() Verbosity {
	return o.verbosity
}

// IsQuiet reports whether the channel suppresses all output.
func (o *Output) IsQuiet() bool {
	return o.verbosity == Quiet
}

// IsVerbose reports whether the channel is at Verbose or above.
func (o *Output) IsVerbose() bool {
	return o.verbosity >= Verbose
}

// Write emits messages in order, each transformed according to t and
// followed by a line separator when newline is true. In Quiet mode it
// returns immediately and the sink is never called.
//
// An unknown t fails with ErrInvalidType before the offending message
// reaches the sink; messages earlier in the sequence stay written.
func (o *Output) Write(t Type, newline bool, messages ...string) error {
	if o.verbosity == Quiet {
		return nil
	}
	for _, message := range messages {
		var rendered string
		switch t {
		case TypeNormal:
			rendered = o.formatter.Format(message)
		case TypeRaw:
			rendered = message
		case TypePlain:
			rendered = format.Strip(o.formatter.Format(message))
		default:
			return fmt.Errorf("%w: %d", ErrInvalidType, t)
		}
		o.sink.Write(rendered, newline)
	}
	return nil
}

// Writeln emits messages with a trailing line separator each.
func (o *Output) Writeln(t Type, messages ...string) error {
	return o.Write(t, true, messages...)
}

// Print emits formatted messages without trailing line separators.
func (o *Output) Print(messages ...string) error {
	return o.Write(TypeNormal, false, messages...)
}

// Println emits formatted messages, one per line.
func (o *Output) Println(messages ...string) error {
	return o.Writeln(TypeNormal, messages...)
}
