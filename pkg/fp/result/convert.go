package result

import (
	"github.com/ib-77/linqtools/pkg/fp/option"
)

// FromOption is Ok for Some, Error(onNone()) for None.
func FromOption[T, E any](o option.Option[T], onNone func() E) Result[T, E] {
	return option.Match(o,
		func(v T) Result[T, E] { return Ok[T, E](v) },
		func() Result[T, E] { return Error[T](onNone()) })
}

// ToOption forgets the error.
func ToOption[T, E any](r Result[T, E]) option.Option[T] {
	return Match(r,
		option.Some[T],
		func(E) option.Option[T] { return option.None[T]() })
}
