package supervisor

import (
	"sync"

	"github.com/lambda-feedback/tool-launcher/internal/console"
	"github.com/lambda-feedback/tool-launcher/internal/execution/worker"
	"github.com/lambda-feedback/tool-launcher/internal/registry"
)

// Handle is a launched tool. It is owned by the supervisor, and
// released only once the process is reaped and its output drained.
type Handle struct {
	Index int
	Spec  registry.ToolSpec

	worker worker.Worker

	stdoutColor console.Color
	stderrColor console.Color

	readers sync.WaitGroup
	drained chan struct{}
}

func newHandle(index int, spec registry.ToolSpec, w worker.Worker) *Handle {
	return &Handle{
		Index:       index,
		Spec:        spec,
		worker:      w,
		stdoutColor: console.ColorFor(index, console.Stdout),
		stderrColor: console.ColorFor(index, console.Stderr),
		drained:     make(chan struct{}),
	}
}

func (h *Handle) Name() string {
	return h.Spec.Name
}

func (h *Handle) Pid() int {
	return h.worker.Pid()
}

func (h *Handle) State() worker.State {
	return h.worker.State()
}

// Done returns a channel that is closed once the tool exited and
// all of its output has been relayed.
func (h *Handle) Done() <-chan struct{} {
	return h.drained
}

// reaped reports whether the tool process has exited, regardless
// of descendants still holding on to its output streams.
func (h *Handle) reaped() bool {
	select {
	case <-h.worker.Done():
		return true
	default:
		return false
	}
}

// closeStreams unblocks readers that are still waiting for output,
// e.g. because a descendant of the tool holds on to the pipes.
func (h *Handle) closeStreams() {
	if stdout := h.worker.Stdout(); stdout != nil {
		_ = stdout.Close()
	}

	if stderr := h.worker.Stderr(); stderr != nil {
		_ = stderr.Close()
	}
}
