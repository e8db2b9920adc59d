package proc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/linqtools/pkg/fp"
	"github.com/ib-77/linqtools/pkg/fp/result"
)

type launcherMock struct {
	mock.Mock
}

func (m *launcherMock) Start(ctx context.Context, name string, args ...string) (Handle, error) {
	ret := m.Called(ctx, name, args)
	h, _ := ret.Get(0).(Handle)
	return h, ret.Error(1)
}

type fakeHandle struct {
	stdout  string
	stderr  string
	waitErr error
}

func (h *fakeHandle) Stdout() io.Reader { return strings.NewReader(h.stdout) }
func (h *fakeHandle) Stderr() io.Reader { return strings.NewReader(h.stderr) }
func (h *fakeHandle) Wait() error       { return h.waitErr }

type exitError int

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitError) ExitCode() int { return int(e) }

func runWith(t *testing.T, h Handle, startErr error, opts ...RunnerOption) result.Result[string, *ProcessError] {
	t.Helper()

	launcher := &launcherMock{}
	launcher.On("Start", mock.Anything, "tool", []string{"--flag"}).Return(h, startErr).Once()

	runner := NewRunner(append([]RunnerOption{WithLauncher(launcher)}, opts...)...)
	res, err := runner.Run(context.Background(), "tool", "--flag").Await(context.Background())
	require.NoError(t, err)
	launcher.AssertExpectations(t)
	return res
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	res := runWith(t, &fakeHandle{stdout: "  hello world \n", stderr: "warning only"}, nil)

	v, ok := res.Get()
	require.True(t, ok, "expected Ok, got %v", res)
	assert.Equal(t, "  hello world \n", v)
}

func TestRun_NonZeroExitWithOutput(t *testing.T) {
	t.Parallel()

	res := runWith(t, &fakeHandle{stdout: "partial\n", stderr: "warning", waitErr: exitError(2)}, nil)

	v, ok := res.Get()
	require.True(t, ok, "expected Ok, got %v", res)
	assert.Equal(t, "partial\n", v)
}

func TestRun_NonZeroExit(t *testing.T) {
	t.Parallel()

	res := runWith(t, &fakeHandle{stdout: "\n", stderr: " bad thing \n", waitErr: exitError(2)}, nil)

	pe, failed := res.GetError()
	require.True(t, failed)
	assert.Equal(t, "tool", pe.Name)
	assert.Equal(t, 2, pe.ExitCode)
	assert.Equal(t, "bad thing", pe.Stderr)
	assert.NotEqual(t, uuid.Nil, pe.RunID)
	assert.EqualError(t, pe, "tool: exit code 2: bad thing")
}

func TestRun_BlankOutput(t *testing.T) {
	t.Parallel()

	res := runWith(t, &fakeHandle{stdout: " \n\t"}, nil)

	pe, failed := res.GetError()
	require.True(t, failed)
	assert.Equal(t, 0, pe.ExitCode)
	assert.ErrorIs(t, pe, ErrNoOutput)
}

func TestRun_StartFailure(t *testing.T) {
	t.Parallel()

	startErr := errors.New("no such file")
	res := runWith(t, nil, startErr)

	pe, failed := res.GetError()
	require.True(t, failed)
	assert.Equal(t, NotStarted, pe.ExitCode)
	assert.ErrorIs(t, pe, startErr)
}

func TestRun_WaitFailureWithoutExitCode(t *testing.T) {
	t.Parallel()

	waitErr := errors.New("wait failed")
	res := runWith(t, &fakeHandle{stdout: "out", waitErr: waitErr}, nil)

	pe, failed := res.GetError()
	require.True(t, failed)
	assert.Equal(t, NotStarted, pe.ExitCode)
	assert.ErrorIs(t, pe, waitErr)
}

type panickingLauncher struct{}

func (panickingLauncher) Start(context.Context, string, ...string) (Handle, error) {
	panic("launcher exploded")
}

func TestRun_LauncherPanic(t *testing.T) {
	t.Parallel()

	runner := NewRunner(WithLauncher(panickingLauncher{}))
	res, err := runner.Run(context.Background(), "tool").Await(context.Background())
	require.NoError(t, err)

	pe, failed := res.GetError()
	require.True(t, failed)
	var panicErr *fp.PanicError
	require.ErrorAs(t, pe, &panicErr)
	assert.Equal(t, "launcher exploded", panicErr.Value)
}

func TestRun_LogsFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	runWith(t, &fakeHandle{stderr: "denied", waitErr: exitError(1)}, nil, WithLogger(zap.New(core)))

	warnings := logs.FilterMessage("process failed").All()
	require.Len(t, warnings, 1)
	fields := warnings[0].ContextMap()
	assert.Equal(t, "tool", fields["name"])
	assert.Equal(t, int64(1), fields["exit_code"])
	assert.NotEmpty(t, fields["run_id"])
}

func TestExecLauncher(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}
	runner := NewRunner()
	ctx := context.Background()

	ok, err := runner.Run(ctx, "sh", "-c", "echo '  hi  '").Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "  hi  \n", result.GetOrDefault(ok, ""))

	failed, err := runner.Run(ctx, "sh", "-c", "echo oops >&2; exit 3").Await(ctx)
	require.NoError(t, err)
	pe, isErr := failed.GetError()
	require.True(t, isErr)
	assert.Equal(t, 3, pe.ExitCode)
	assert.Equal(t, "oops", pe.Stderr)

	missing, err := runner.Run(ctx, "definitely-not-a-command-linqtools").Await(ctx)
	require.NoError(t, err)
	pe, isErr = missing.GetError()
	require.True(t, isErr)
	assert.Equal(t, NotStarted, pe.ExitCode)
}
