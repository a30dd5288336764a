package report

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/tm-88/outcome/pkg/outcome"
)

// Text builds a reporter that writes one rendered line per failure,
// conventionally to an error stream. A nil writer defaults to stderr.
func Text[E any](w io.Writer, render func(E) string) outcome.Reporter[E] {
	if w == nil {
		w = os.Stderr
	}
	return outcome.ReporterFunc[E](func(e E) {
		fmt.Fprintln(w, render(e))
	})
}

// Stringer builds a reporter for failure types that render themselves.
func Stringer[E fmt.Stringer](w io.Writer) outcome.Reporter[E] {
	return Text(w, func(e E) string { return e.String() })
}

// Zap builds a reporter that emits a structured error-level entry carrying
// the failure value.
func Zap[E any](log *zap.Logger, msg string) outcome.Reporter[E] {
	return outcome.ReporterFunc[E](func(e E) {
		log.Error(msg, zap.Any("reason", e))
	})
}
