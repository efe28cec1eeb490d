// Package wren is a small console output library for CLI tools: a
// verbosity-gated output channel, inline markup formatting, and
// pluggable sinks. See the output, format, and style packages.
package wren

// Version is the current wren release.
const Version = "0.1.0"
