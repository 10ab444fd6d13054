package rop

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ib-77/ropresult/pkg/option"
)

type variant uint8

const (
	invalid variant = iota
	success
	failure
)

func (v variant) String() string {
	switch v {
	case success:
		return "Success"
	case failure:
		return "Failure"
	default:
		return "Invalid"
	}
}

// Result holds either a success value of type T or an error value of type E.
// The variant is fixed by the constructor that built it and never changes.
// The zero value is not a valid Result: every method except String panics
// with *IllegalInstantiationError when called on it, including IsSuccess,
// IsFailure, Variant and ID. Passing it as the other operand of And or Or
// panics the same way.
type Result[T, E any] struct {
	id    uuid.UUID
	tag   variant
	value T
	err   E
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		id:    uuid.New(),
		tag:   success,
		value: v,
	}
}

func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		id:  uuid.New(),
		tag: failure,
		err: e,
	}
}

// FromPair lifts a conventional (value, error) return into a Result.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Success[T, error](v)
}

func (r Result[T, E]) mustTag() variant {
	if r.tag == invalid {
		panic(&IllegalInstantiationError{
			Message: "Result must be constructed with Success or Fail",
		})
	}
	return r.tag
}

func (r Result[T, E]) IsSuccess() bool {
	return r.mustTag() == success
}

func (r Result[T, E]) IsFailure() bool {
	return r.mustTag() == failure
}

// Variant returns "Success" or "Failure".
func (r Result[T, E]) Variant() string {
	return r.mustTag().String()
}

// ID identifies this instance. Every constructor call yields a new ID;
// combinators that pass an existing Result through return it with its ID.
func (r Result[T, E]) ID() uuid.UUID {
	r.mustTag()
	return r.id
}

func (r Result[T, E]) SuccessOption() option.Option[T] {
	if r.mustTag() == success {
		return option.Some(r.value)
	}
	return option.None[T]()
}

func (r Result[T, E]) FailureOption() option.Option[E] {
	if r.mustTag() == failure {
		return option.Some(r.err)
	}
	return option.None[E]()
}

// Pair returns both payloads and whether r is a Success. Only the payload
// of the actual variant is meaningful.
func (r Result[T, E]) Pair() (T, E, bool) {
	return r.value, r.err, r.mustTag() == success
}

func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	return And(r, other)
}

func (r Result[T, E]) AndThen(fn func(T) Result[T, E]) Result[T, E] {
	return AndThen(r, fn)
}

func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	return Or(r, other)
}

func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	return OrElse(r, fn)
}

func (r Result[T, E]) Map(fn func(T) T) Result[T, E] {
	return Map(r, fn)
}

func (r Result[T, E]) MapErr(fn func(E) E) Result[T, E] {
	return MapErr(r, fn)
}

// Tee calls fn with the success value and returns r unchanged.
func (r Result[T, E]) Tee(fn func(T)) Result[T, E] {
	if r.mustTag() == success {
		fn(r.value)
	}
	return r
}

// TeeErr calls fn with the error value and returns r unchanged.
func (r Result[T, E]) TeeErr(fn func(E)) Result[T, E] {
	if r.mustTag() == failure {
		fn(r.err)
	}
	return r
}

// Expect returns the success value or panics with an *IllegalCallError
// carrying msg.
func (r Result[T, E]) Expect(msg string) T {
	if tag := r.mustTag(); tag != success {
		panic(newIllegalCall("Expect", tag.String(), msg))
	}
	return r.value
}

// ExpectErr returns the error value or panics with an *IllegalCallError
// carrying msg.
func (r Result[T, E]) ExpectErr(msg string) E {
	if tag := r.mustTag(); tag != failure {
		panic(newIllegalCall("ExpectErr", tag.String(), msg))
	}
	return r.err
}

func (r Result[T, E]) Unwrap() T {
	if tag := r.mustTag(); tag != success {
		panic(newIllegalCall("Unwrap", tag.String(), ""))
	}
	return r.value
}

func (r Result[T, E]) UnwrapErr() E {
	if tag := r.mustTag(); tag != failure {
		panic(newIllegalCall("UnwrapErr", tag.String(), ""))
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.mustTag() == success {
		return r.value
	}
	return fallback
}

func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.mustTag() == success {
		return r.value
	}
	return fn(r.err)
}

func (r Result[T, E]) String() string {
	switch r.tag {
	case success:
		return fmt.Sprintf("Success(%v)", r.value)
	case failure:
		return fmt.Sprintf("Failure(%v)", r.err)
	default:
		return "Invalid"
	}
}
