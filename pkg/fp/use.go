package fp

import (
	"errors"
	"io"
)

// Use runs body with r and closes r afterwards, whatever body does. A panic in
// body is re-raised once r is closed.
func Use[R io.Closer, T any](r R, body func(R) T) (out T, err error) {
	defer func() {
		err = r.Close()
	}()
	return body(r), nil
}

// UseErr is Use for bodies that fail. The close error is joined to the body error.
func UseErr[R io.Closer, T any](r R, body func(R) (T, error)) (out T, err error) {
	defer func() {
		err = errors.Join(err, r.Close())
	}()
	return body(r)
}

// Finally runs action and then, in every case, finally.
func Finally(action func(), finally func()) {
	defer finally()
	action()
}
