package result

import (
	"github.com/ib-77/linqtools/pkg/fp"
)

// Try runs f and returns its value as Ok. A panic raised by f is recovered,
// wrapped with fp.Recovered and mapped by onPanic into the Error payload.
func Try[T, E any](f func() T, onPanic func(error) E) (res Result[T, E]) {
	defer func() {
		if p := recover(); p != nil {
			res = Error[T](onPanic(fp.Recovered(p)))
		}
	}()
	return Ok[T, E](f())
}

// TryDo is Try for actions without a value.
func TryDo[E any](action func(), onPanic func(error) E) Result[fp.Nothing, E] {
	return Try(func() fp.Nothing { return fp.Do(action) }, onPanic)
}

// TryErr runs a Go style function. Both a returned error and a panic end up
// in the Error payload through onErr.
func TryErr[T, E any](f func() (T, error), onErr func(error) E) (res Result[T, E]) {
	defer func() {
		if p := recover(); p != nil {
			res = Error[T](onErr(fp.Recovered(p)))
		}
	}()
	v, err := f()
	if err != nil {
		return Error[T](onErr(err))
	}
	return Ok[T, E](v)
}

// Self is the identity error mapper, for Try calls that keep the error as is.
func Self(err error) error {
	return err
}
