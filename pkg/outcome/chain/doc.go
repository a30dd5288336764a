// Package chain provides a fluent wrapper around outcome.Result[T, E]
// for building synchronous pipelines without branching on the discriminant
// at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: compose a function returning a new Result
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Finally/UnwrapOr: collapse the chain into a final value
//
// Methods keep the type parameters fixed; the free functions Then, Map and
// MapErr switch the success or failure type mid-chain.
package chain
