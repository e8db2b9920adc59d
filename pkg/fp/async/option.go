package async

import (
	"context"

	"github.com/ib-77/linqtools/pkg/fp/option"
)

// Option is an option that becomes available later. The zero Option is None.
type Option[T any] struct {
	task *Task[option.Option[T]]
}

func ToAsyncOption[T any](o option.Option[T]) Option[T] {
	return Option[T]{task: FromValue(o)}
}

func OptionFrom[T any](t *Task[option.Option[T]]) Option[T] {
	return Option[T]{task: t}
}

// Task exposes the underlying task.
func (o Option[T]) Task() *Task[option.Option[T]] {
	if o.task == nil {
		return FromValue(option.None[T]())
	}
	return o.task
}

// ToOption waits for the option.
func (o Option[T]) ToOption(ctx context.Context) (option.Option[T], error) {
	opt, err := o.Task().Await(ctx)
	if err != nil {
		return option.None[T](), err
	}
	return orNone(opt), nil
}

func (o Option[T]) Where(predicate func(T) bool) Option[T] {
	return OptionFrom(Map(o.Task(), func(v option.Option[T]) option.Option[T] {
		return option.Where(v, predicate)
	}))
}

func MapOption[T, R any](o Option[T], f func(T) R) Option[R] {
	return OptionFrom(Map(o.Task(), func(v option.Option[T]) option.Option[R] {
		return option.Map(v, f)
	}))
}

// MapOptionAsync awaits the option and, when it is Some, awaits f on the value.
func MapOptionAsync[T, R any](o Option[T], f func(T) *Task[R]) Option[R] {
	return BindOption(o, func(v T) Option[R] {
		return OptionFrom(Map(f(v), option.Some[R]))
	})
}

func BindOption[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	return OptionFrom(Bind(o.Task(), func(v option.Option[T]) *Task[option.Option[R]] {
		return option.Match(v,
			func(t T) *Task[option.Option[R]] { return f(t).Task() },
			func() *Task[option.Option[R]] { return FromValue(option.None[R]()) })
	}))
}

func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) *Task[R] {
	return Map(o.Task(), func(v option.Option[T]) R {
		return option.Match(v, onSome, onNone)
	})
}

func orNone[T any](o option.Option[T]) option.Option[T] {
	if o == nil {
		return option.None[T]()
	}
	return o
}
