// Package report contains ready-made implementations of outcome.Reporter
// for the common diagnostic sinks: a plain text line on an io.Writer
// (Text, Stringer) and a structured zap entry (Zap).
//
// The core stays I/O-free; these adapters live on the consumer side of the
// capability contract and are purely a convenience.
package report
