package proc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/linqtools/pkg/fp/async"
	"github.com/ib-77/linqtools/pkg/fp/option"
	"github.com/ib-77/linqtools/pkg/fp/result"
)

type Runner struct {
	launcher Launcher
	log      *zap.Logger
}

type RunnerOption func(*Runner)

func WithLauncher(l Launcher) RunnerOption {
	return func(r *Runner) {
		r.launcher = l
	}
}

func WithLogger(log *zap.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = log
	}
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		launcher: ExecLauncher{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts name with args. The task completes with the standard output as
// printed, whatever the exit code, as long as it is not blank. Otherwise, or
// when the process could not start or its output could not be read, it
// completes with a *ProcessError carrying the exit code and trimmed stderr.
func (r *Runner) Run(ctx context.Context, name string, args ...string) *async.Task[result.Result[string, *ProcessError]] {
	runID := uuid.New()
	log := r.log.With(zap.String("run_id", runID.String()), zap.String("name", name))

	return async.Go(ctx, func(ctx context.Context) result.Result[string, *ProcessError] {
		res := result.TryErr(
			func() (string, error) { return r.run(ctx, log, runID, name, args) },
			func(err error) *ProcessError { return toProcessError(runID, name, err) })

		if e, failed := res.GetError(); failed {
			log.Warn("process failed", zap.Int("exit_code", e.ExitCode), zap.Error(e))
		} else {
			log.Debug("process succeeded")
		}
		return res
	})
}

func (r *Runner) run(ctx context.Context, log *zap.Logger, runID uuid.UUID, name string, args []string) (string, error) {
	log.Debug("starting process", zap.Strings("args", args))

	h, err := r.launcher.Start(ctx, name, args...)
	if err != nil {
		return "", &ProcessError{RunID: runID, Name: name, ExitCode: NotStarted, Cause: err}
	}

	var stdout, stderr bytes.Buffer
	g := new(errgroup.Group)
	g.Go(func() error { return drain(&stdout, h.Stdout()) })
	g.Go(func() error { return drain(&stderr, h.Stderr()) })
	readErr := g.Wait()

	waitErr := h.Wait()
	code, exited := exitCode(waitErr)
	if waitErr != nil && !exited {
		return "", &ProcessError{RunID: runID, Name: name, ExitCode: NotStarted, Cause: waitErr}
	}
	log.Debug("process exited", zap.Int("exit_code", code))

	errText := option.Map(option.WhiteSpaceToNone(stderr.String()), strings.TrimSpace).GetOrDefault("")
	if readErr != nil {
		return "", &ProcessError{RunID: runID, Name: name, ExitCode: code, Stderr: errText, Cause: readErr}
	}

	return result.FromOption(option.WhiteSpaceToNone(stdout.String()), func() error {
		cause := ErrNoOutput
		if code != 0 {
			cause = nil
		}
		return &ProcessError{RunID: runID, Name: name, ExitCode: code, Stderr: errText, Cause: cause}
	}).Unwrap()
}

func drain(dst *bytes.Buffer, src io.Reader) error {
	if src == nil {
		return nil
	}
	_, err := io.Copy(dst, src)
	return err
}

// toProcessError keeps errors that already are process errors and wraps the
// rest, panics captured by result.TryErr included.
func toProcessError(runID uuid.UUID, name string, err error) *ProcessError {
	var pe *ProcessError
	if errors.As(err, &pe) {
		return pe
	}
	return &ProcessError{RunID: runID, Name: name, ExitCode: NotStarted, Cause: err}
}
