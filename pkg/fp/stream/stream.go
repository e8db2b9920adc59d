package stream

import (
	"context"

	"github.com/ib-77/linqtools/pkg/fp"
	"github.com/ib-77/linqtools/pkg/fp/async"
	"github.com/ib-77/linqtools/pkg/fp/option"
)

func Map[T, R any](ctx context.Context, inputCh <-chan T, f func(T) R) <-chan R {
	return stage(ctx, inputCh, syncEngine(func(v T) Emit[R] {
		return Keep(f(v))
	}))
}

// MapAwait maps through an asynchronous step, one element at a time.
func MapAwait[T, R any](ctx context.Context, inputCh <-chan T, f func(ctx context.Context, v T) *async.Task[R]) <-chan R {
	return stage(ctx, inputCh, func(ctx context.Context, v T) *async.Task[Emit[R]] {
		return async.Map(f(ctx, v), Keep[R])
	})
}

func Where[T any](ctx context.Context, inputCh <-chan T, predicate func(T) bool) <-chan T {
	return stage(ctx, inputCh, syncEngine(func(v T) Emit[T] {
		if predicate(v) {
			return Keep(v)
		}
		return Skip[T]()
	}))
}

// DistinctBy passes the first element seen for every key.
func DistinctBy[T any, K comparable](ctx context.Context, inputCh <-chan T, key func(T) K) <-chan T {
	seen := make(map[K]struct{})
	return Where(ctx, inputCh, func(v T) bool {
		k := key(v)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

func SideEffectForAll[T any](ctx context.Context, inputCh <-chan T, sideEffect func(T)) <-chan T {
	return Map(ctx, inputCh, func(v T) T {
		return fp.SideEffect(v, sideEffect)
	})
}

// SideEffectForAllAwait waits for the side effect of an element before passing it on.
func SideEffectForAllAwait[T any](ctx context.Context, inputCh <-chan T,
	sideEffect func(ctx context.Context, v T) *async.Task[fp.Nothing]) <-chan T {
	return MapAwait(ctx, inputCh, func(ctx context.Context, v T) *async.Task[T] {
		return async.Map(sideEffect(ctx, v), func(fp.Nothing) T { return v })
	})
}

// Bind flattens: every element opens an inner stream that is drained before
// the next element is read. A panic in f or a fault of an inner stream stops
// the stage like a fault in Map does.
func Bind[T, R any](ctx context.Context, inputCh <-chan T, f func(ctx context.Context, v T) <-chan R) <-chan R {
	out := make(chan R)
	go func() {
		defer close(out)
		if fault := flatten(ctx, inputCh, out, f); fault != nil {
			setFault[R](out, fault)
		}
	}()
	return out
}

func flatten[T, R any](ctx context.Context, inputCh <-chan T, out chan<- R, f func(ctx context.Context, v T) <-chan R) any {
	for {
		select {
		case <-ctx.Done():
			return nil
		case v, ok := <-inputCh:
			if !ok {
				return takeFault(inputCh)
			}
			inner, fault, err := async.FromFunc(func() <-chan R { return f(ctx, v) }).Settle(ctx)
			if err != nil {
				return nil
			}
			if fault != nil {
				go drain(inputCh)
				return fault
			}
			for r := range inner {
				select {
				case out <- r:
				case <-ctx.Done():
					return nil
				}
			}
			if fault := takeFault(inner); fault != nil {
				go drain(inputCh)
				return fault
			}
		}
	}
}

// FirstOrNone awaits predicate on each element and returns the first match.
// It is None when nothing matches or ctx ends first. The rest of the input is
// drained in the background; a fault upstream or in predicate is raised here.
func FirstOrNone[T any](ctx context.Context, inputCh <-chan T, predicate func(v T) *async.Task[bool]) option.Option[T] {
	for {
		select {
		case <-ctx.Done():
			go drain(inputCh)
			return option.None[T]()
		case v, ok := <-inputCh:
			if !ok {
				raise(inputCh)
				return option.None[T]()
			}
			matched, fault, err := predicate(v).Settle(ctx)
			if err != nil || fault != nil || matched {
				go drain(inputCh)
			}
			switch {
			case fault != nil:
				panic(fault)
			case err != nil:
				return option.None[T]()
			case matched:
				return option.FromNullable(v)
			}
		}
	}
}
