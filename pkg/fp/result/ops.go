package result

import (
	"github.com/ib-77/linqtools/pkg/fp"
)

// Match calls exactly one of onOk and onError.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onError func(E) R) R {
	r = orZero(r)
	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	e, _ := r.GetError()
	return onError(e)
}

// Map transforms the Ok value. The Error payload is carried over as is.
func Map[T, E, R any](r Result[T, E], f func(T) R) Result[R, E] {
	return Match(r,
		func(v T) Result[R, E] { return Ok[R, E](f(v)) },
		rethrow[R, E])
}

// Bind chains a function that may itself fail with the same error type.
func Bind[T, E, R any](r Result[T, E], f func(T) Result[R, E]) Result[R, E] {
	return Match(r,
		func(v T) Result[R, E] { return orZero(f(v)) },
		rethrow[R, E])
}

// BindProject binds and then combines the original and the bound value.
func BindProject[T, E, R, U any](r Result[T, E], bind func(T) Result[R, E], project func(T, R) U) Result[U, E] {
	return Bind(r, func(t T) Result[U, E] {
		return Map(bind(t), func(v R) U { return project(t, v) })
	})
}

// MapError transforms the Error payload, adapting error types between layers.
func MapError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	return Match(r,
		func(v T) Result[T, F] { return success[T, F]{value: v} },
		func(e E) Result[T, F] { return Error[T](f(e)) })
}

// Get unwraps the Ok value or derives one from the error.
func Get[T, E any](r Result[T, E], errorToValue func(E) T) T {
	return Match(r, func(v T) T { return v }, errorToValue)
}

func GetOrDefault[T, E any](r Result[T, E], fallback T) T {
	return orZero(r).GetOrDefault(fallback)
}

// GetOrThrow unwraps the Ok value or panics with the error payload. When E is
// not an error type the panic carries fp.ErrNotAnError instead.
func GetOrThrow[T, E any](r Result[T, E]) T {
	return Match(r,
		func(v T) T { return v },
		func(e E) T {
			if err, ok := any(e).(error); ok {
				panic(err)
			}
			panic(fp.ErrNotAnError)
		})
}

// Collect gathers Ok values in order; the first Error wins.
func Collect[T, E any](rs ...Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		r = orZero(r)
		if v, ok := r.Get(); ok {
			values = append(values, v)
			continue
		}
		return rethrow[[]T, E](mustError(r))
	}
	return success[[]T, E]{value: values}
}

func rethrow[R, E any](e E) Result[R, E] {
	return failure[R, E]{err: e}
}

func mustError[T, E any](r Result[T, E]) E {
	e, _ := r.GetError()
	return e
}
