package chain

import (
	"go.uber.org/zap"

	"github.com/ib-77/ropresult/pkg/rop"
)

type options struct {
	logger *zap.Logger
}

// Option configures a Chain.
type Option func(*options)

// WithLogger sets the logger that receives one debug entry per step.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T, E any] struct {
	log    *zap.Logger
	step   int
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](result rop.Result[T, E], opts ...Option) *Chain[T, E] {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &Chain[T, E]{
		log:    o.logger,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T, opts ...Option) *Chain[T, E] {
	return Start(rop.Success[T, E](value), opts...)
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(T) rop.Result[U, E]) *Chain[U, E] {
	return next(c, rop.AndThen(c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(T) (U, error)) *Chain[U, error] {
	return next(c, rop.AndThen(c.result, func(v T) rop.Result[U, error] {
		u, err := tryOnSuccess(v)
		return rop.FromPair(u, err)
	}))
}

// Map chains a pure transformation of the success value
func Map[T, U, E any](c *Chain[T, E], onSuccess func(T) U) *Chain[U, E] {
	return next(c, rop.Map(c.result, onSuccess))
}

// MapErr chains a pure transformation of the error value
func MapErr[T, E, F any](c *Chain[T, E], onFailure func(E) F) *Chain[T, F] {
	return next(c, rop.MapErr(c.result, onFailure))
}

// Recover gives a failed chain a chance to get back on the success rail
func Recover[T, E, F any](c *Chain[T, E], onFailure func(E) rop.Result[T, F]) *Chain[T, F] {
	return next(c, rop.OrElse(c.result, onFailure))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(T)) *Chain[T, E] {
	return next(c, c.result.Tee(onSuccess))
}

// Finally collapses the chain into a final value
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	return rop.Match(c.result, onSuccess, onFailure)
}

func next[T, E, U, F any](c *Chain[T, E], res rop.Result[U, F]) *Chain[U, F] {
	n := &Chain[U, F]{
		log:    c.log,
		step:   c.step + 1,
		result: res,
	}

	n.log.Debug("chain step", stepFields(n.step, c.result, res)...)
	return n
}

func stepFields(step int, from, to rop.Outcome) []zap.Field {
	return []zap.Field{
		zap.Int("step", step),
		zap.String("from", from.Variant()),
		zap.String("to", to.Variant()),
		zap.Stringer("result_id", to.ID()),
	}
}
