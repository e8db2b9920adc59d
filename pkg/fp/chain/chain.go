package chain

import (
	"context"

	"github.com/ib-77/linqtools/pkg/fp"
	"github.com/ib-77/linqtools/pkg/fp/result"
)

// Chain wraps a result.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result result.Result[T, E]
}

// Start creates a new chain from a result
func Start[T, E any](ctx context.Context, r result.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: r,
	}
}

// FromValue creates a new chain from an Ok value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return Start(ctx, result.Ok[T, E](value))
}

// Result returns the underlying result
func (c *Chain[T, E]) Result() result.Result[T, E] {
	return c.result
}

// Then chains a function that returns a result with the same error type
func Then[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) result.Result[U, E]) *Chain[U, E] {
	return Start(c.ctx, result.Bind(c.result, func(v T) result.Result[U, E] {
		return onOk(c.ctx, v)
	}))
}

// ThenTry chains a function that returns (U, error); onErr maps the error,
// or a panic raised by the function, into E
func ThenTry[T, U, E any](c *Chain[T, E], tryOnOk func(context.Context, T) (U, error), onErr func(error) E) *Chain[U, E] {
	return Then(c, func(ctx context.Context, v T) result.Result[U, E] {
		return result.TryErr(func() (U, error) { return tryOnOk(ctx, v) }, onErr)
	})
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) U) *Chain[U, E] {
	return Start(c.ctx, result.Map(c.result, func(v T) U {
		return onOk(c.ctx, v)
	}))
}

// MapError adapts the error type of the chain
func MapError[T, E, F any](c *Chain[T, E], onError func(context.Context, E) F) *Chain[T, F] {
	return Start(c.ctx, result.MapError(c.result, func(e E) F {
		return onError(c.ctx, e)
	}))
}

// Ensure performs a side effect on Ok without changing the result
func (c *Chain[T, E]) Ensure(onOk func(context.Context, T)) *Chain[T, E] {
	result.Match(c.result,
		func(v T) fp.Nothing { return fp.Do(func() { onOk(c.ctx, v) }) },
		fp.ToNothing[E])
	return c
}

// Recover performs a side effect on Error without changing the result
func (c *Chain[T, E]) Recover(onError func(context.Context, E)) *Chain[T, E] {
	result.Match(c.result,
		fp.ToNothing[T],
		func(e E) fp.Nothing { return fp.Do(func() { onError(c.ctx, e) }) })
	return c
}

// Finally collapses the chain into a final value
func Finally[T, E, U any](c *Chain[T, E], onOk func(context.Context, T) U, onError func(context.Context, E) U) U {
	return result.Match(c.result,
		func(v T) U { return onOk(c.ctx, v) },
		func(e E) U { return onError(c.ctx, e) })
}
