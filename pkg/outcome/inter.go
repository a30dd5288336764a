package outcome

// Reporter is the capability an error type must provide before it can be
// used with a reporting extraction: turn a failure value into a diagnostic
// report. The core never constructs one; callers supply it per E.
type Reporter[E any] interface {
	// Report emits a diagnostic for the failure value
	Report(e E)
}

// ReporterFunc adapts a plain function to a Reporter.
type ReporterFunc[E any] func(e E)

func (f ReporterFunc[E]) Report(e E) {
	f(e)
}
