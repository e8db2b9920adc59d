package result

import (
	"fmt"

	"github.com/ib-77/linqtools/pkg/fp"
)

// Result is Ok(T) or Error(E). The zero (nil) Result is an Error holding the zero E.
type Result[T, E any] interface {
	IsOK() bool
	IsError() bool
	Get() (T, bool)
	GetError() (E, bool)
	GetOrDefault(fallback T) T
	// Unwrap converts to the Go (value, error) pair.
	Unwrap() (T, error)
	String() string

	sealed()
}

type success[T, E any] struct {
	value T
}

type failure[T, E any] struct {
	err E
}

func Ok[T, E any](v T) Result[T, E] {
	if fp.IsNil(v) {
		panic(fp.NilValue("result.Ok"))
	}
	return success[T, E]{value: v}
}

func Error[T, E any](e E) Result[T, E] {
	if fp.IsNil(e) {
		panic(fp.NilValue("result.Error"))
	}
	return failure[T, E]{err: e}
}

// Of lifts a Go (value, error) pair. Like Ok, it panics when err is nil and v
// is nil, as a (nil, nil) return is; lift such values with option.FromNullable
// and FromOption instead.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return failure[T, error]{err: err}
	}
	return Ok[T, error](v)
}

func (r success[T, E]) IsOK() bool         { return true }
func (r success[T, E]) IsError() bool      { return false }
func (r success[T, E]) Get() (T, bool)     { return r.value, true }
func (r success[T, E]) GetOrDefault(T) T   { return r.value }
func (r success[T, E]) Unwrap() (T, error) { return r.value, nil }
func (r success[T, E]) String() string     { return fmt.Sprintf("Ok(%v)", r.value) }
func (r success[T, E]) sealed()            {}

func (r success[T, E]) GetError() (E, bool) {
	var zero E
	return zero, false
}

func (r failure[T, E]) IsOK() bool                { return false }
func (r failure[T, E]) IsError() bool             { return true }
func (r failure[T, E]) GetError() (E, bool)       { return r.err, true }
func (r failure[T, E]) GetOrDefault(fallback T) T { return fallback }
func (r failure[T, E]) String() string            { return fmt.Sprintf("Error(%v)", r.err) }
func (r failure[T, E]) sealed()                   {}

func (r failure[T, E]) Get() (T, bool) {
	var zero T
	return zero, false
}

func (r failure[T, E]) Unwrap() (T, error) {
	var zero T
	return zero, asError(r.err)
}

func asError[E any](e E) error {
	if err, ok := any(e).(error); ok {
		return err
	}
	return fmt.Errorf("result error: %v", e)
}

// orZero turns the nil Result into the Error it stands for.
func orZero[T, E any](r Result[T, E]) Result[T, E] {
	if r == nil {
		var zero E
		return failure[T, E]{err: zero}
	}
	return r
}
