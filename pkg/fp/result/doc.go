// Package result provides Result[T, E], either an Ok value of T or an Error
// value of E.
//
// Result is a sealed two-variant sum type. Combinators work on the Ok value
// and carry the Error payload through unchanged; only MapError touches it.
// Try, TryDo and TryErr are the boundary where panics become Error values.
// Elsewhere a panic is either raised where it happens or, inside async tasks,
// kept as the task's fault and raised again by Await.
package result
