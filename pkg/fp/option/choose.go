package option

import (
	"slices"
	"strings"
)

// Case pairs a predicate with the selector applied when it matches.
type Case[T, R any] struct {
	Predicate func(T) bool
	Selector  func(T) R
}

func When[T, R any](predicate func(T) bool, selector func(T) R) Case[T, R] {
	return Case[T, R]{Predicate: predicate, Selector: selector}
}

// Default matches anything, so it belongs last.
func Default[T, R any](selector func(T) R) Case[T, R] {
	return Case[T, R]{Predicate: func(T) bool { return true }, Selector: selector}
}

// Choose applies the selector of the first matching case, None if no case matches.
func Choose[T, R any](t T, cases ...Case[T, R]) Option[R] {
	return Map(
		FirstOrNone(slices.Values(cases), func(c Case[T, R]) bool { return c.Predicate(t) }),
		func(c Case[T, R]) R { return c.Selector(t) })
}

// WhiteSpaceToNone is None for empty or blank strings.
func WhiteSpaceToNone(s string) Option[string] {
	if strings.TrimSpace(s) == "" {
		return None[string]()
	}
	return Some(s)
}
