// Package outcome provides Result[T, E], a two-state container for the
// outcome of a fallible operation: exactly one of a success value T or a
// failure value E, selected by an immutable discriminant.
//
// Highlights:
// - Success/Fail/Done: construct results (Done for the empty success form)
// - FromPtr/FromNillable/FromCall: bridge nullable values and (T, error) calls
// - Map/MapErr/AndThen/Match: pure combinators for building pipelines
// - Tee/TeeBoth: side-effect helpers that leave the result unchanged
// - Unwrap/UnwrapOr/UnwrapOrElse: collapse a result back to a plain value
//
// Combinators never report and never terminate; only the extraction family
// does. Unwrap is the single fatal operation: on failure it invokes the
// caller-supplied Reporter and ends the process with FatalExitStatus.
// Results are immutable values, safe to copy and share whenever their
// payload types are.
package outcome
