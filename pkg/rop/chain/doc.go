// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous railway chains.
//
// It composes AndThen, Map, MapErr, OrElse and Match behind a
// Chain[T, E] type, so pipelines read top to bottom without branching
// on the result at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a success value
// - Then: continue with a function returning a Result
// - ThenTry: continue with a function returning (U, error)
// - Map/MapErr: transform the value on one rail
// - Recover: switch a failure back onto the success rail
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value
//
// Each step is logged at debug level to the logger set with WithLogger.
package chain
