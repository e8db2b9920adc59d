package option

import (
	"iter"

	"github.com/ib-77/linqtools/pkg/fp"
)

// Match calls exactly one of onSome and onNone.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o != nil {
		if v, ok := o.Get(); ok {
			return onSome(v)
		}
	}
	return onNone()
}

// Map transforms the value of a Some. None passes through untouched.
func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	return Match(o,
		func(v T) Option[R] { return Some(f(v)) },
		None[R])
}

// Bind chains a function that may itself produce None.
func Bind[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	return Match(o,
		func(v T) Option[R] { return orNone(f(v)) },
		None[R])
}

// BindProject binds and then combines the original and the bound value.
func BindProject[T, R, U any](o Option[T], bind func(T) Option[R], project func(T, R) U) Option[U] {
	return Bind(o, func(t T) Option[U] {
		return Map(bind(t), func(r R) U { return project(t, r) })
	})
}

// Where is the free-function form of Option.Where; it accepts the nil Option.
func Where[T any](o Option[T], predicate func(T) bool) Option[T] {
	return orNone(o).Where(predicate)
}

// Zip is Some of both values when both options are Some.
func Zip[A, B any](a Option[A], b Option[B]) Option[fp.Pair[A, B]] {
	return BindProject(a,
		func(A) Option[B] { return b },
		fp.MakePair[A, B])
}

// As narrows the value by type assertion; a failed assertion gives None.
func As[T, R any](o Option[T]) Option[R] {
	return Bind(o, func(v T) Option[R] {
		r, ok := any(v).(R)
		return FromComma(r, ok)
	})
}

// ToPtr returns a pointer to a copy of the value, nil for None.
func ToPtr[T any](o Option[T]) *T {
	return Match(o,
		func(v T) *T { return &v },
		func() *T { return nil })
}

// FirstOrNone returns the first non-nil element of seq satisfying predicate.
// Nil elements are skipped without calling predicate.
func FirstOrNone[T any](seq iter.Seq[T], predicate func(T) bool) Option[T] {
	for v := range seq {
		if !fp.IsNil(v) && predicate(v) {
			return Some(v)
		}
	}
	return None[T]()
}

// Values yields the payloads of the Some elements of seq.
func Values[T any](seq iter.Seq[Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if o == nil {
				continue
			}
			if v, ok := o.Get(); ok && !yield(v) {
				return
			}
		}
	}
}
