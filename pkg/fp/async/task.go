package async

import (
	"context"

	"github.com/google/uuid"

	"github.com/ib-77/linqtools/pkg/fp"
)

// Task is a computation that completes once with a value of T.
type Task[T any] struct {
	id    uuid.UUID
	done  chan struct{}
	value T
	// fault holds a panic raised by the computation; Await raises it again.
	fault any
}

func newTask[T any]() *Task[T] {
	return &Task[T]{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
}

// Go starts f on its own goroutine.
func Go[T any](ctx context.Context, f func(ctx context.Context) T) *Task[T] {
	t := newTask[T]()
	go t.run(func() T { return f(ctx) })
	return t
}

// FromValue is an already completed task holding v.
func FromValue[T any](v T) *Task[T] {
	t := newTask[T]()
	t.value = v
	close(t.done)
	return t
}

// FromFunc runs f on the calling goroutine and returns the completed task.
// A panic in f becomes the fault of the task.
func FromFunc[T any](f func() T) *Task[T] {
	t := newTask[T]()
	t.run(f)
	return t
}

// Do starts an action whose only outcome is completion.
func Do(ctx context.Context, action func(ctx context.Context)) *Task[fp.Nothing] {
	return Go(ctx, func(ctx context.Context) fp.Nothing {
		action(ctx)
		return fp.Unit
	})
}

func (t *Task[T]) run(f func() T) {
	t.complete(capture(f))
}

func (t *Task[T]) ID() uuid.UUID {
	return t.id
}

// Done is closed when the task has completed.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Await waits for the value. It returns ctx.Err() when ctx ends first and
// panics with the original value when the computation panicked.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	v, fault, err := t.Settle(ctx)
	if fault != nil {
		panic(fault)
	}
	return v, err
}

// Settle is Await that hands back the panic value as fault instead of raising
// it, for callers that forward faults to another goroutine.
func (t *Task[T]) Settle(ctx context.Context) (v T, fault any, err error) {
	select {
	case <-t.done:
		return t.value, t.fault, nil
	case <-ctx.Done():
		return v, nil, ctx.Err()
	}
}

// Bind waits for t, then starts the dependent task f(value) and completes
// with its value. f never runs before t is done. A fault in t skips f and
// faults the returned task.
func Bind[T, R any](t *Task[T], f func(T) *Task[R]) *Task[R] {
	out := newTask[R]()
	go func() {
		<-t.done
		if t.fault != nil {
			out.fail(t.fault)
			return
		}
		next, fault := capture(func() *Task[R] { return f(t.value) })
		if fault != nil {
			out.fail(fault)
			return
		}
		if next == nil {
			out.fail(fp.NilValue("async.Bind"))
			return
		}
		<-next.done
		out.complete(next.value, next.fault)
	}()
	return out
}

// Map waits for t and transforms its value.
func Map[T, R any](t *Task[T], f func(T) R) *Task[R] {
	return Bind(t, func(v T) *Task[R] { return FromValue(f(v)) })
}

// BindProject binds and combines the original and the bound value.
func BindProject[T, R, U any](t *Task[T], bind func(T) *Task[R], project func(T, R) U) *Task[U] {
	return Bind(t, func(v T) *Task[U] {
		return Map(bind(v), func(r R) U { return project(v, r) })
	})
}

// Then runs a side effect on the value once t is done.
func Then[T any](t *Task[T], sideEffect func(T)) *Task[T] {
	return Map(t, func(v T) T { return fp.SideEffect(v, sideEffect) })
}

// capture runs f, returning the panic value instead of raising it.
func capture[R any](f func() R) (r R, fault any) {
	defer func() {
		fault = recover()
	}()
	return f(), nil
}

func (t *Task[T]) fail(fault any) {
	t.fault = fault
	close(t.done)
}

func (t *Task[T]) complete(v T, fault any) {
	t.value = v
	t.fault = fault
	close(t.done)
}
