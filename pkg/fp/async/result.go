package async

import (
	"context"

	"github.com/ib-77/linqtools/pkg/fp"
	"github.com/ib-77/linqtools/pkg/fp/result"
)

// FromResult lifts a result into a completed task.
func FromResult[T, E any](r result.Result[T, E]) *Task[result.Result[T, E]] {
	return FromValue(r)
}

// MapResult transforms the Ok value once the task is done.
func MapResult[T, E, R any](t *Task[result.Result[T, E]], f func(T) R) *Task[result.Result[R, E]] {
	return Map(t, func(r result.Result[T, E]) result.Result[R, E] {
		return result.Map(r, f)
	})
}

// MapResultAsync awaits the result, then awaits f on its Ok value.
func MapResultAsync[T, E, R any](t *Task[result.Result[T, E]], f func(T) *Task[R]) *Task[result.Result[R, E]] {
	return BindResultAsync(t, func(v T) *Task[result.Result[R, E]] {
		return Map(f(v), result.Ok[R, E])
	})
}

// MapResultWith applies an async handler to a result that is already there.
func MapResultWith[T, E, R any](r result.Result[T, E], f func(T) *Task[R]) *Task[result.Result[R, E]] {
	return MapResultAsync(FromResult(r), f)
}

func BindResult[T, E, R any](t *Task[result.Result[T, E]], f func(T) result.Result[R, E]) *Task[result.Result[R, E]] {
	return Map(t, func(r result.Result[T, E]) result.Result[R, E] {
		return result.Bind(r, f)
	})
}

// BindResultAsync chains a dependent async step; an Error skips it.
func BindResultAsync[T, E, R any](t *Task[result.Result[T, E]], f func(T) *Task[result.Result[R, E]]) *Task[result.Result[R, E]] {
	return Bind(t, func(r result.Result[T, E]) *Task[result.Result[R, E]] {
		return result.Match(r, f, func(e E) *Task[result.Result[R, E]] {
			return FromResult(result.Error[R](e))
		})
	})
}

func BindProjectResult[T, E, R, U any](t *Task[result.Result[T, E]],
	bind func(T) *Task[result.Result[R, E]], project func(T, R) U) *Task[result.Result[U, E]] {
	return BindResultAsync(t, func(v T) *Task[result.Result[U, E]] {
		return MapResult(bind(v), func(r R) U { return project(v, r) })
	})
}

func MapResultError[T, E, F any](t *Task[result.Result[T, E]], f func(E) F) *Task[result.Result[T, F]] {
	return Map(t, func(r result.Result[T, E]) result.Result[T, F] {
		return result.MapError(r, f)
	})
}

func MatchResult[T, E, R any](t *Task[result.Result[T, E]], onOk func(T) R, onError func(E) R) *Task[R] {
	return Map(t, func(r result.Result[T, E]) R {
		return result.Match(r, onOk, onError)
	})
}

// MatchResultAsync awaits the result and then the branch it selects.
func MatchResultAsync[T, E, R any](t *Task[result.Result[T, E]], onOk func(T) *Task[R], onError func(E) *Task[R]) *Task[R] {
	return Bind(t, func(r result.Result[T, E]) *Task[R] {
		return result.Match(r, onOk, onError)
	})
}

// GetOrThrowResult completes with the Ok value; an Error faults the task with
// the error payload, raised again by Await.
func GetOrThrowResult[T, E any](t *Task[result.Result[T, E]]) *Task[T] {
	return Map(t, result.GetOrThrow[T, E])
}

// TryAsync runs f on its own goroutine and captures both its error and any
// panic into the Error payload.
func TryAsync[T, E any](ctx context.Context, f func(ctx context.Context) (T, error), onErr func(error) E) *Task[result.Result[T, E]] {
	return Go(ctx, func(ctx context.Context) result.Result[T, E] {
		return result.TryErr(func() (T, error) { return f(ctx) }, onErr)
	})
}

func TryDoAsync[E any](ctx context.Context, f func(ctx context.Context) error, onErr func(error) E) *Task[result.Result[fp.Nothing, E]] {
	return TryAsync(ctx, func(ctx context.Context) (fp.Nothing, error) {
		return fp.Unit, f(ctx)
	}, onErr)
}
