package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalCall matches every *IllegalCallError via errors.Is.
	ErrIllegalCall = errors.New("illegal call")

	// ErrIllegalInstantiation matches every *IllegalInstantiationError via errors.Is.
	ErrIllegalInstantiation = errors.New("illegal instantiation")
)

const (
	KindIllegalCall          = "IllegalCall"
	KindIllegalInstantiation = "IllegalInstantiation"
)

// IllegalCallError is the panic value raised when an extraction method is
// invoked on the variant it is not defined for, e.g. Unwrap on a Failure.
type IllegalCallError struct {
	Method  string
	Variant string
	Message string
}

func newIllegalCall(method, variant, msg string) *IllegalCallError {
	if msg == "" {
		msg = fmt.Sprintf("cannot call %s on a Result of type %s", method, variant)
	}
	return &IllegalCallError{Method: method, Variant: variant, Message: msg}
}

func (e *IllegalCallError) Error() string { return e.Message }

func (e *IllegalCallError) Kind() string { return KindIllegalCall }

func (e *IllegalCallError) Is(target error) bool { return target == ErrIllegalCall }

// IllegalInstantiationError is the panic value raised when a Result that was
// not built by Success or Fail (its zero value) is used.
type IllegalInstantiationError struct {
	Message string
}

func (e *IllegalInstantiationError) Error() string { return e.Message }

func (e *IllegalInstantiationError) Kind() string { return KindIllegalInstantiation }

func (e *IllegalInstantiationError) Is(target error) bool { return target == ErrIllegalInstantiation }
