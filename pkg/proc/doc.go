// Package proc runs external programs and reports the outcome as a
// result.Result: the trimmed standard output on success, a *ProcessError
// with exit code and standard error text otherwise.
package proc
