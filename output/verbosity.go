package output

// Verbosity controls whether an Output emits at all. Only Quiet changes
// behavior at this layer: it suppresses every write. Normal and Verbose
// both emit; IsVerbose lets callers gate extra detail.
type Verbosity int

const (
	// Quiet suppresses all output.
	Quiet Verbosity = iota
	// Normal is the default level.
	Normal
	// Verbose enables additional diagnostic output.
	Verbose
)

// Type selects the transform applied to a message before emission.
type Type int

const (
	// TypeNormal passes the message through the channel's formatter.
	TypeNormal Type = iota
	// TypeRaw emits the message unchanged.
	TypeRaw
	// TypePlain formats the message and then strips all markup and
	// styling, leaving bare text.
	TypePlain
)
