package outcome

// Map transforms the success payload and rewraps it; a failure passes
// through untouched and f is never invoked.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.IsSuccess() {
		return Success[U, E](f(r.value))
	}
	return failFrom[T, U](r)
}

// MapErr translates the failure payload into another taxonomy; a success
// passes through untouched and g is never invoked. This is the sanctioned
// way to cross an abstraction boundary with a lower-level error.
func MapErr[T, E, F any](r Result[T, E], g func(E) F) Result[T, F] {
	if r.IsSuccess() {
		return successFrom[T, E, F](r)
	}
	return Result[T, F]{
		err:       g(r.err),
		state:     stateFailure,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// AndThen sequences a fallible continuation: on success its result is
// returned directly, on failure the chain short-circuits and f is never
// invoked. The continuation always returns a full Result.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.IsSuccess() {
		return f(r.value)
	}
	return failFrom[T, U](r)
}

// Match dispatches to exactly one branch with the active payload.
func Match[T, E, R any](r Result[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Tee runs a side effect on success without changing the result.
func Tee[T, E any](r Result[T, E], onSuccess func(T)) Result[T, E] {
	if r.IsSuccess() && onSuccess != nil {
		onSuccess(r.value)
	}
	return r
}

// TeeBoth runs one of two side effects depending on the discriminant,
// without changing the result. Nil callbacks are skipped.
func TeeBoth[T, E any](r Result[T, E], onSuccess func(T), onFailure func(E)) Result[T, E] {
	if r.IsSuccess() {
		if onSuccess != nil {
			onSuccess(r.value)
		}
		return r
	}
	if onFailure != nil {
		onFailure(r.err)
	}
	return r
}
