package proc

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotStarted is the exit code of a process that never ran.
const NotStarted = -1

var ErrNoOutput = errors.New("process produced no output")

type ProcessError struct {
	RunID    uuid.UUID
	Name     string
	ExitCode int
	// Stderr is the trimmed standard error, empty when it was blank.
	Stderr string
	Cause  error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s: exit code %d", e.Name, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ProcessError) Unwrap() error {
	return e.Cause
}

// exitCode reads the code of errors that carry one, as *exec.ExitError does.
func exitCode(err error) (int, bool) {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode(), true
	}
	return 0, false
}
