package fp

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	ErrNilValue   = errors.New("nil value")
	ErrNotFound   = errors.New("value not found")
	ErrNotAnError = errors.New("error payload is not an error")
)

// PanicError is a recovered panic turned into a value.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error itself
// (runtime.Error for a division by zero, for example).
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recovered wraps the value returned by recover. It must be called from the
// deferred function so the captured stack points at the panic site.
func Recovered(v any) error {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

// NilValue reports a nil payload handed to a constructor named by who.
func NilValue(who string) error {
	return fmt.Errorf("%s: %w", who, ErrNilValue)
}
