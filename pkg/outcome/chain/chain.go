package chain

import (
	"github.com/tm-88/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result to enable fluent composition
type Chain[T, E any] struct {
	res outcome.Result[T, E]
}

// Start creates a new chain from an outcome.Result
func Start[T, E any](r outcome.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(outcome.Success[T, E](v))
}

// Result returns the underlying outcome.Result
func (c Chain[T, E]) Result() outcome.Result[T, E] {
	return c.res
}

// Then composes a function that already returns an outcome.Result,
// short-circuiting past an existing failure
func (c Chain[T, E]) Then(onSuccess func(T) outcome.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: outcome.AndThen(c.res, onSuccess)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(T) T) Chain[T, E] {
	return Chain[T, E]{res: outcome.Map(c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the
// result; nil handlers are skipped
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	return Chain[T, E]{res: outcome.TeeBoth(c.res, onSuccess, onFailure)}
}

// Finally collapses the chain to a final value via the two handlers
func (c Chain[T, E]) Finally(onSuccess func(T) T, onFailure func(E) T) T {
	return outcome.Match(c.res, onSuccess, onFailure)
}

// UnwrapOr collapses the chain to its payload or to fallback
func (c Chain[T, E]) UnwrapOr(fallback T, opts ...outcome.ExtractOption[E]) T {
	return outcome.UnwrapOr(c.res, fallback, opts...)
}

// Then chains a function that switches the success type
func Then[T, U, E any](c Chain[T, E], onSuccess func(T) outcome.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: outcome.AndThen(c.res, onSuccess)}
}

// Map chains a pure transformation to a new success type
func Map[T, U, E any](c Chain[T, E], onSuccess func(T) U) Chain[U, E] {
	return Chain[U, E]{res: outcome.Map(c.res, onSuccess)}
}

// MapErr translates the failure taxonomy as the chain crosses a boundary
func MapErr[T, E, F any](c Chain[T, E], onFailure func(E) F) Chain[T, F] {
	return Chain[T, F]{res: outcome.MapErr(c.res, onFailure)}
}
