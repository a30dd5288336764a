package outcome

type extractOptions[E any] struct {
	reporter Reporter[E]
}

// ExtractOption configures a non-fatal extraction.
type ExtractOption[E any] func(*extractOptions[E])

// WithReporter makes a non-fatal extraction report the failure before the
// fallback or recovery value is produced. Reporting on the non-fatal path
// is an explicit call-site choice, never a default.
func WithReporter[E any](rep Reporter[E]) ExtractOption[E] {
	return func(o *extractOptions[E]) {
		o.reporter = rep
	}
}

func newExtractOptions[E any](opts []ExtractOption[E]) *extractOptions[E] {
	o := new(extractOptions[E])
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *extractOptions[E]) report(e E) {
	if o.reporter != nil {
		o.reporter.Report(e)
	}
}
