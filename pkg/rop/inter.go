package rop

import "github.com/google/uuid"

// Outcome is the payload-independent surface of a Result, usable when the
// type parameters do not matter (logging, bookkeeping).
type Outcome interface {
	// IsSuccess returns true if the Result is a Success
	IsSuccess() bool
	// IsFailure returns true if the Result is a Failure
	IsFailure() bool
	// Variant names the variant: "Success" or "Failure"
	Variant() string
	// ID identifies the Result instance
	ID() uuid.UUID
}

var _ Outcome = Result[struct{}, struct{}]{}
