// Package fp holds the pieces shared by the option, result, async, seq and
// stream packages: the Nothing unit type, nil probing, the sentinel errors and
// the panic capture used at Try boundaries, plus a few value helpers
// (SideEffect, If, With) and scoped resource use (Use, UseErr).
//
// The sum types themselves live in the subpackages:
// - option: Option[T], a value that may be absent
// - result: Result[T, E], a value or an error
// - async: Task[T], a value that becomes available later
package fp
