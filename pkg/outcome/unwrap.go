package outcome

import "os"

// FatalExitStatus is the single exit status used for every fatal unwrap,
// regardless of the error kind.
const FatalExitStatus = 1

// replaced in tests to observe the fatal path in-process
var osExit = os.Exit

// Unwrap resolves the result or ends the process: on success it returns the
// payload with no side effect; on failure it reports through rep exactly
// once and terminates with FatalExitStatus. For call sites where a failure
// is an invariant violation, not a recoverable condition.
func Unwrap[T, E any](r Result[T, E], rep Reporter[E]) T {
	if r.IsFailure() {
		if rep != nil {
			rep.Report(r.err)
		}
		osExit(FatalExitStatus)
		var zero T
		return zero // unreachable unless osExit is stubbed
	}
	return r.value
}

// UnwrapUnit is Unwrap for the empty success form.
func UnwrapUnit[E any](r Result[Unit, E], rep Reporter[E]) {
	if r.IsFailure() {
		if rep != nil {
			rep.Report(r.err)
		}
		osExit(FatalExitStatus)
	}
}

// UnwrapOr resolves the result to its payload, or to fallback on failure.
// Silent by default: supplying a fallback already signals the caller
// tolerates the failure. Pass WithReporter to report before falling back.
func UnwrapOr[T, E any](r Result[T, E], fallback T, opts ...ExtractOption[E]) T {
	if r.IsSuccess() {
		return r.value
	}
	newExtractOptions(opts).report(r.err)
	return fallback
}

// UnwrapOrUnit discards a failure of the empty success form, reporting it
// first when WithReporter is given.
func UnwrapOrUnit[E any](r Result[Unit, E], opts ...ExtractOption[E]) {
	if r.IsFailure() {
		newExtractOptions(opts).report(r.err)
	}
}

// UnwrapOrElse resolves the result to its payload, or to recover(e) on
// failure. recover is invoked exactly once and only on failure; cleanup,
// logging and metrics on the failure path belong in it.
func UnwrapOrElse[T, E any](r Result[T, E], recover func(E) T, opts ...ExtractOption[E]) T {
	if r.IsSuccess() {
		return r.value
	}
	newExtractOptions(opts).report(r.err)
	return recover(r.err)
}

// UnwrapOrElseUnit is UnwrapOrElse for the empty success form.
func UnwrapOrElseUnit[E any](r Result[Unit, E], recover func(E), opts ...ExtractOption[E]) {
	if r.IsFailure() {
		newExtractOptions(opts).report(r.err)
		recover(r.err)
	}
}
