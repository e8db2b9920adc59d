package stream

import (
	"context"

	"github.com/ib-77/linqtools/pkg/fp/async"
	"github.com/ib-77/linqtools/pkg/fp/result"
)

type SourceHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

// FromValues emits values in order and closes, or stops early when ctx ends.
func FromValues[T any](ctx context.Context, values ...T) <-chan T {
	return emit(ctx, SourceHandlers[T]{}, values, func(v T) T { return v })
}

// Results emits every value as Ok, reporting progress through handlers.
func Results[T any](ctx context.Context, handlers SourceHandlers[T], values ...T) <-chan result.Result[T, error] {
	return emit(ctx, handlers, values, result.Ok[T, error])
}

func emit[T, Out any](ctx context.Context, handlers SourceHandlers[T], values []T, wrap func(T) Out) <-chan Out {
	in := make(chan Out)

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- wrap(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// FromTask emits the values of a task once it completes. A fault of the task
// is raised by the sink reading the channel.
func FromTask[T any](ctx context.Context, task *async.Task[[]T]) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		values, fault, err := task.Settle(ctx)
		if err != nil {
			return
		}
		if fault != nil {
			setFault[T](out, fault)
			return
		}
		for _, v := range values {
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect reads the channel until it closes or ctx ends. It panics with the
// fault of the stage that closed the channel, if any.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				raise(out)
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// First returns the first value, or defaultV when the channel closes empty or
// ctx ends. The rest of the channel is drained in the background.
func First[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			raise(out)
			return defaultV
		}
		go drain(out)
		return v
	case <-ctx.Done():
		go drain(out)
		return defaultV
	}
}
