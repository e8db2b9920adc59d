package option

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/ib-77/linqtools/pkg/fp"
)

// Option is either Some(value) or None. The zero (nil) Option is None.
type Option[T any] interface {
	IsSome() bool
	IsNone() bool
	// Get returns the value and true for Some, the zero T and false for None.
	Get() (T, bool)
	// Where keeps a Some whose value satisfies predicate; anything else is None.
	Where(predicate func(T) bool) Option[T]
	GetOrDefault(fallback T) T
	GetOrElse(fallback func() T) T
	// ThrowOnNone unwraps the value or panics with an error wrapping fp.ErrNotFound.
	ThrowOnNone() T
	ThrowOnNoneWith(err func() error) T
	// Or returns the option itself when Some, otherwise the evaluated alternative.
	Or(alternative func() Option[T]) Option[T]
	WhenSome(sideEffect func(T)) Option[T]
	WhenNone(sideEffect func()) Option[T]
	Slice() []T
	All() iter.Seq[T]
	String() string

	sealed()
}

type some[T any] struct {
	value T
}

type none[T any] struct{}

// Some wraps v. It panics when v is nil; use FromNullable for values that may be.
func Some[T any](v T) Option[T] {
	if fp.IsNil(v) {
		panic(fp.NilValue("option.Some"))
	}
	return some[T]{value: v}
}

// None is the absent value of T. All Nones of the same T are equal.
func None[T any]() Option[T] {
	return none[T]{}
}

func FromNullable[T any](v T) Option[T] {
	if fp.IsNil(v) {
		return None[T]()
	}
	return some[T]{value: v}
}

func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return FromNullable(*p)
}

// FromComma lifts the comma-ok idiom: map lookups, type assertions, channel receives.
func FromComma[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return FromNullable(v)
}

func (s some[T]) IsSome() bool   { return true }
func (s some[T]) IsNone() bool   { return false }
func (s some[T]) Get() (T, bool) { return s.value, true }
func (s some[T]) sealed()        {}

func (s some[T]) Where(predicate func(T) bool) Option[T] {
	if predicate(s.value) {
		return s
	}
	return None[T]()
}

func (s some[T]) GetOrDefault(T) T               { return s.value }
func (s some[T]) GetOrElse(func() T) T           { return s.value }
func (s some[T]) ThrowOnNone() T                 { return s.value }
func (s some[T]) ThrowOnNoneWith(func() error) T { return s.value }
func (s some[T]) Or(func() Option[T]) Option[T]  { return s }
func (s some[T]) WhenNone(func()) Option[T]      { return s }
func (s some[T]) Slice() []T                     { return []T{s.value} }
func (s some[T]) String() string                 { return fmt.Sprint(s.value) }

func (s some[T]) WhenSome(sideEffect func(T)) Option[T] {
	sideEffect(s.value)
	return s
}

func (s some[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(s.value)
	}
}

func (n none[T]) IsSome() bool { return false }
func (n none[T]) IsNone() bool { return true }
func (n none[T]) sealed()      {}

func (n none[T]) Get() (T, bool) {
	var zero T
	return zero, false
}

func (n none[T]) Where(func(T) bool) Option[T]  { return n }
func (n none[T]) GetOrDefault(fallback T) T     { return fallback }
func (n none[T]) GetOrElse(fallback func() T) T { return fallback() }
func (n none[T]) WhenSome(func(T)) Option[T]    { return n }
func (n none[T]) Slice() []T                    { return []T{} }
func (n none[T]) String() string                { return "" }
func (n none[T]) All() iter.Seq[T]              { return func(func(T) bool) {} }

func (n none[T]) ThrowOnNone() T {
	panic(fmt.Errorf("option of %v: %w", reflect.TypeFor[T](), fp.ErrNotFound))
}

func (n none[T]) ThrowOnNoneWith(err func() error) T {
	panic(err())
}

func (n none[T]) Or(alternative func() Option[T]) Option[T] {
	return orNone(alternative())
}

func (n none[T]) WhenNone(sideEffect func()) Option[T] {
	sideEffect()
	return n
}

// orNone turns the nil Option into None so callers never see a nil interface
// come out of a combinator.
func orNone[T any](o Option[T]) Option[T] {
	if o == nil {
		return None[T]()
	}
	return o
}
