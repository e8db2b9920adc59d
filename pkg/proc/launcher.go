package proc

import (
	"context"
	"io"
	"os/exec"
)

// Launcher starts processes.
type Launcher interface {
	Start(ctx context.Context, name string, args ...string) (Handle, error)
}

// Handle is a started process. Both output streams must be read to the end
// before Wait is called.
type Handle interface {
	Stdout() io.Reader
	Stderr() io.Reader
	Wait() error
}

// ExecLauncher starts processes with os/exec. They are killed when ctx ends.
type ExecLauncher struct{}

type execHandle struct {
	cmd    *exec.Cmd
	stdout io.Reader
	stderr io.Reader
}

func (ExecLauncher) Start(ctx context.Context, name string, args ...string) (Handle, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execHandle{cmd: cmd, stdout: stdout, stderr: stderr}, nil
}

func (h *execHandle) Stdout() io.Reader { return h.stdout }
func (h *execHandle) Stderr() io.Reader { return h.stderr }
func (h *execHandle) Wait() error       { return h.cmd.Wait() }
