// Package option provides Option[T], a container that either holds a single
// value (Some) or is empty (None).
package option

// Option represents an optional value.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v: v, valid: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.valid }

func (o Option[T]) IsNone() bool { return !o.valid }

// Unwrap returns the value and whether it was present.
func (o Option[T]) Unwrap() (T, bool) {
	return o.v, o.valid
}

// UnwrapOr returns the value if present, otherwise fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}
