// Package chain provides a fluent wrapper around result.Result[T, E] that
// carries a context through synchronous railway chains.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert the error with a mapper
// - Map: transform the Ok value (T -> U)
// - Ensure/Recover: side effects on Ok or on Error without changing the result
// - Finally: collapse the chain into a final value
package chain
