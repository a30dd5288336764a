// Package stream lifts the outcome combinators over channels for concurrent
// fan-out processing of many results.
//
// Common usage:
// - Source: feed a slice of values into a pipeline as successes
// - Then/Map/Filter: lifted combinators running over a fixed number of lines
// - Finally: resolve every result to a plain value
// - Collect: drain the end of a pipeline into a slice
//
// Failures ride the same channel as successes and pass through every stage
// untouched, so a pipeline propagates the first failure of each item without
// extra branching. Cancelling ctx stops consumption; output order across
// lines is not preserved.
package stream
