package seq

import (
	"iter"
	"slices"

	"github.com/ib-77/linqtools/pkg/fp/option"
)

// DistinctBy yields the first element for every key. A nil source is empty.
func DistinctBy[T any, K comparable](source iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		seen := make(map[K]struct{})
		for v := range source {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// ForEach runs action for every element. A nil source does nothing.
func ForEach[T any](source iter.Seq[T], action func(T)) {
	if source == nil {
		return
	}
	for v := range source {
		action(v)
	}
}

// Concat chains sequences, skipping nil ones.
func Concat[T any](sources ...iter.Seq[T]) iter.Seq[T] {
	return ConcatMany(slices.Values(sources))
}

func ConcatMany[T any](sources iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if sources == nil {
			return
		}
		for s := range sources {
			if s == nil {
				continue
			}
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Intersperse yields separator after every element, the last one included.
func Intersperse[T any](source iter.Seq[T], separator T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if source == nil {
			return
		}
		for v := range source {
			if !yield(v) || !yield(separator) {
				return
			}
		}
	}
}

// Windowed cuts source into consecutive chunks of size elements. The last
// chunk holds whatever is left. Every chunk is a fresh slice.
func Windowed[T any](source iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		panic("seq.Windowed: size must be positive")
	}
	return func(yield func([]T) bool) {
		if source == nil {
			return
		}
		window := make([]T, 0, size)
		for v := range source {
			window = append(window, v)
			if len(window) < size {
				continue
			}
			if !yield(window) {
				return
			}
			window = make([]T, 0, size)
		}
		if len(window) > 0 {
			yield(window)
		}
	}
}

// SideEffectForAll calls sideEffect on each element as it passes through.
func SideEffectForAll[T any](source iter.Seq[T], sideEffect func(T)) iter.Seq[T] {
	return Map(source, func(v T) T {
		sideEffect(v)
		return v
	})
}

func Map[T, R any](source iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if source == nil {
			return
		}
		for v := range source {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// FilterMap keeps the values of the Some results of selector.
func FilterMap[T, R any](source iter.Seq[T], selector func(T) option.Option[R]) iter.Seq[R] {
	return option.Values(Map(source, selector))
}

// Append yields source followed by values.
func Append[T any](source iter.Seq[T], values ...T) iter.Seq[T] {
	return Concat(source, slices.Values(values))
}
