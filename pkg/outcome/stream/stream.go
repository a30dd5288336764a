package stream

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tm-88/outcome/pkg/outcome"
)

// Source emits the given values as successes, stopping early when ctx is
// cancelled.
func Source[T, E any](ctx context.Context, values []T) <-chan outcome.Result[T, E] {
	out := make(chan outcome.Result[T, E])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- outcome.Success[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Then lifts a fallible continuation over a channel of results, running up
// to lines workers. Failures pass through untouched; output order is not
// preserved across lines.
func Then[In, Out, E any](ctx context.Context, in <-chan outcome.Result[In, E],
	onSuccess func(In) outcome.Result[Out, E], lines int) <-chan outcome.Result[Out, E] {

	return lift(ctx, in, lines, func(r outcome.Result[In, E]) outcome.Result[Out, E] {
		return outcome.AndThen(r, onSuccess)
	})
}

// Map lifts a pure transformation over a channel of results.
func Map[In, Out, E any](ctx context.Context, in <-chan outcome.Result[In, E],
	onSuccess func(In) Out, lines int) <-chan outcome.Result[Out, E] {

	return lift(ctx, in, lines, func(r outcome.Result[In, E]) outcome.Result[Out, E] {
		return outcome.Map(r, onSuccess)
	})
}

// Filter rejects successes that fail the predicate, turning them into
// failures carrying reject. Existing failures pass through untouched.
func Filter[T, E any](ctx context.Context, in <-chan outcome.Result[T, E],
	keep func(T) bool, reject E, lines int) <-chan outcome.Result[T, E] {

	return lift(ctx, in, lines, func(r outcome.Result[T, E]) outcome.Result[T, E] {
		return outcome.AndThen(r, func(v T) outcome.Result[T, E] {
			if !keep(v) {
				return outcome.Fail[T, E](reject)
			}
			return outcome.Success[T, E](v)
		})
	})
}

// Finally resolves every result to a plain value via the two handlers.
func Finally[In, Out, E any](ctx context.Context, in <-chan outcome.Result[In, E],
	onSuccess func(In) Out, onFailure func(E) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case r, ok := <-in:
				if !ok {
					return
				}
				send(ctx, out, outcome.Match(r, onSuccess, onFailure))
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains a channel into a slice, stopping early when ctx is
// cancelled.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

func lift[In, Out, E any](ctx context.Context, in <-chan outcome.Result[In, E], lines int,
	apply func(outcome.Result[In, E]) outcome.Result[Out, E]) <-chan outcome.Result[Out, E] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan outcome.Result[Out, E])

	go func() {
		defer close(out)

		g := new(errgroup.Group)
		g.SetLimit(lines)

	loop:
		for {
			select {
			case r, ok := <-in:
				if !ok {
					break loop
				}
				g.Go(func() error {
					send(ctx, out, apply(r))
					return nil
				})
			case <-ctx.Done():
				break loop
			}
		}

		_ = g.Wait()
	}()

	return out
}

func send[T any](ctx context.Context, out chan<- T, v T) {
	select {
	case out <- v:
	case <-ctx.Done():
	}
}
