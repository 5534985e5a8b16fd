package supervisor_test

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lambda-feedback/tool-launcher/internal/console"
	"github.com/lambda-feedback/tool-launcher/internal/execution/supervisor"
	"github.com/lambda-feedback/tool-launcher/internal/execution/worker"
	"github.com/lambda-feedback/tool-launcher/internal/execution/worker/workertest"
	"github.com/lambda-feedback/tool-launcher/internal/registry"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type syncBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.buf.String()
}

func (b *syncBuffer) Lines() []string {
	s := strings.TrimSuffix(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

type output struct {
	stdout *syncBuffer
	stderr *syncBuffer
}

func testConfig() supervisor.Config {
	return supervisor.Config{
		StopTimeout:  2 * time.Second,
		PollInterval: 10 * time.Millisecond,
		ExitPolicy:   supervisor.ExitOnAny,
	}
}

func sleeper(name string) registry.ToolSpec {
	return registry.ToolSpec{Name: name, Argv: []string{"sleep", "30"}}
}

func createSupervisor(
	t *testing.T,
	tools registry.Registry,
	config supervisor.Config,
) (*supervisor.Supervisor, *output) {
	return createSupervisorWithConsole(t, tools, config, false)
}

func createSupervisorWithConsole(
	t *testing.T,
	tools registry.Registry,
	config supervisor.Config,
	color bool,
) (*supervisor.Supervisor, *output) {
	out := &output{stdout: &syncBuffer{}, stderr: &syncBuffer{}}

	s, err := supervisor.New(supervisor.Params{
		Config:   config,
		Registry: tools,
		Console:  console.New(out.stdout, out.stderr, console.WithColor(color)),
		Log:      zap.NewNop(),
	})
	require.NoError(t, err)

	// never leak processes, even if a test fails early
	t.Cleanup(s.Shutdown)

	return s, out
}

func createSupervisorWithFactory(
	t *testing.T,
	tools registry.Registry,
	config supervisor.Config,
	factory supervisor.WorkerFactoryFn,
	log *zap.Logger,
) (*supervisor.Supervisor, *output) {
	out := &output{stdout: &syncBuffer{}, stderr: &syncBuffer{}}

	s, err := supervisor.New(supervisor.Params{
		Config:        config,
		Registry:      tools,
		Console:       console.New(out.stdout, out.stderr, console.WithColor(false)),
		WorkerFactory: factory,
		Log:           log,
	})
	require.NoError(t, err)

	return s, out
}

// waitDrained waits until the output of every tool has been relayed.
func waitDrained(t *testing.T, s *supervisor.Supervisor) {
	t.Helper()

	for _, h := range s.Handles() {
		select {
		case <-h.Done():
		case <-time.After(10 * time.Second):
			t.Fatalf("output of %s not drained", h.Name())
		}
	}
}

// newMockWorker returns a worker without output, which exits once it
// is stopped. Stopping it more than once fails the test.
func newMockWorker(t *testing.T, pid int) *workertest.MockWorker {
	w := workertest.NewMockWorker(t)

	done := make(chan struct{})

	var state atomic.Int32
	state.Store(int32(worker.Running))

	w.EXPECT().Start(mock.Anything).Return(nil)
	w.EXPECT().Pid().Return(pid).Maybe()
	w.EXPECT().Stdout().Return(io.NopCloser(strings.NewReader(""))).Maybe()
	w.EXPECT().Stderr().Return(io.NopCloser(strings.NewReader(""))).Maybe()
	w.EXPECT().Done().Return(done).Maybe()
	w.EXPECT().State().RunAndReturn(func() worker.State {
		return worker.State(state.Load())
	}).Maybe()
	w.EXPECT().Wait(mock.Anything).Return(worker.ExitEvent{}, nil).Maybe()
	w.EXPECT().Stop(mock.Anything).RunAndReturn(func(worker.StopConfig) error {
		state.Store(int32(worker.Exited))
		close(done)
		return nil
	}).Once()

	return w
}
