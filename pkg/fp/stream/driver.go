package stream

import (
	"context"

	"github.com/ib-77/linqtools/pkg/fp/async"
)

// Engine turns one input into at most one output.
type Engine[In, Out any] func(ctx context.Context, in In) *async.Task[Emit[Out]]

// Emit is what an engine made of one element: a value to send on, or a drop.
type Emit[T any] struct {
	Value T
	Drop  bool
}

func Keep[T any](v T) Emit[T] {
	return Emit[T]{Value: v}
}

func Skip[T any]() Emit[T] {
	return Emit[T]{Drop: true}
}

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan In, outCh chan<- Out)
	OnCancelUnprocessed func(ctx context.Context, unprocessed In, outCh chan<- Out)
	OnCancelProcessed   func(ctx context.Context, in In, processed Out, outCh chan<- Out)
}

// DefaultHandlers drains the input on cancel when the context asks for it.
func DefaultHandlers[In, Out any](ctx context.Context) CancellationHandlers[In, Out] {
	if !IsDrainOnCancelEnabled(ctx, false) {
		return CancellationHandlers[In, Out]{}
	}
	return CancellationHandlers[In, Out]{
		OnCancel: func(ctx context.Context, inputCh <-chan In, outCh chan<- Out) {
			drain(inputCh)
		},
	}
}

// Drive pulls inputs one by one, awaits the engine on each and pushes the
// outputs until the input closes or ctx is done. A panic in the engine, or
// one recorded for inputCh, stops the loop and is returned as fault; the rest
// of the input is then drained in the background.
func Drive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out Out)) any {

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return nil
		case in, ok := <-inputCh:
			if !ok {
				return takeFault(inputCh)
			}

			processed, fault, err := apply(ctx, engine, in).Settle(ctx)
			if err != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return nil
			}
			if fault != nil {
				go drain(inputCh)
				return fault
			}

			if processed.Drop {
				continue
			}
			out := processed.Value

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, out, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return nil
			case outCh <- out:
				if onSuccess != nil {
					onSuccess(ctx, out)
				}
			}
		}
	}
}

// Run adds a stage with explicit handlers. The returned channel closes when
// the stage stops; a fault of the stage is raised by the sink reading it.
func Run[In, Out any](ctx context.Context, inputCh <-chan In,
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out Out)) <-chan Out {

	out := make(chan Out)
	go func() {
		defer close(out)
		if fault := Drive(ctx, inputCh, out, engine, handlers, onSuccess); fault != nil {
			setFault[Out](out, fault)
		}
	}()
	return out
}

// apply calls engine off the stage goroutine so that a panic, whether raised
// while building the task or inside it, ends up as the fault of the task.
func apply[In, Out any](ctx context.Context, engine Engine[In, Out], in In) *async.Task[Emit[Out]] {
	return async.Bind(async.FromValue(in), func(in In) *async.Task[Emit[Out]] {
		return engine(ctx, in)
	})
}

func stage[In, Out any](ctx context.Context, inputCh <-chan In, engine Engine[In, Out]) <-chan Out {
	return Run(ctx, inputCh, engine, DefaultHandlers[In, Out](ctx), nil)
}

// syncEngine wraps a synchronous step as an engine.
func syncEngine[In, Out any](f func(in In) Emit[Out]) Engine[In, Out] {
	return func(_ context.Context, in In) *async.Task[Emit[Out]] {
		return async.FromValue(f(in))
	}
}
