// Package rop provides Result[T, E], an immutable value that is either a
// Success carrying a T or a Failure carrying an E.
//
// Construction:
// - Success/Fail: the only way to build a usable Result
// - FromPair: lift a (value, error) return
//
// Combinators (methods keep the payload types, functions may change them):
// - And/AndThen: continue on the success rail
// - Or/OrElse: recover on the failure rail
// - Map/MapErr: transform one payload
// - Tee/TeeErr: side effects on one rail
// - Match: collapse both rails into a single value
//
// Extraction:
// - Unwrap/UnwrapErr/Expect/ExpectErr panic on the wrong variant
// - UnwrapOr/UnwrapOrElse never panic
//
// Contract violations panic with *IllegalCallError or
// *IllegalInstantiationError. Use Catch, errors.Is with ErrIllegalCall /
// ErrIllegalInstantiation, or errors.As to tell them apart from other panics.
package rop
