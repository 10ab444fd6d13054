package rop

// And returns other when r is a Success. A Failure short-circuits into a new
// Failure carrying r's error. Both r and other must be valid Results.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	other.mustTag()
	if r.mustTag() == success {
		return other
	}
	return Fail[U](r.err)
}

// AndThen calls fn with the success value and returns its Result. fn is
// never called for a Failure.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.mustTag() == success {
		return fn(r.value)
	}
	return Fail[U](r.err)
}

// Or returns a new Success carrying r's value, or other when r is a Failure.
// Both r and other must be valid Results.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	other.mustTag()
	if r.mustTag() == success {
		return Success[T, F](r.value)
	}
	return other
}

// OrElse calls fn with the error value when r is a Failure.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.mustTag() == success {
		return Success[T, F](r.value)
	}
	return fn(r.err)
}

func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.mustTag() == success {
		return Success[U, E](fn(r.value))
	}
	return Fail[U](r.err)
}

func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.mustTag() == failure {
		return Fail[T](fn(r.err))
	}
	return Success[T, F](r.value)
}

// Match collapses r into a single value using the handler for its variant.
func Match[T, E, Out any](r Result[T, E], onSuccess func(T) Out, onFailure func(E) Out) Out {
	if r.mustTag() == success {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
