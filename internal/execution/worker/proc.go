package worker

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"time"

	"go.uber.org/zap"
)

type proc struct {
	pid         int
	termination chan struct{}
	exitErr     error
	stdout      *os.File
	stderr      *os.File

	log *zap.Logger
}

func startProc(config StartConfig, log *zap.Logger) (*proc, error) {
	if config.Cmd == "" {
		return nil, ErrInvalidCommand
	}

	cmd := exec.Command(config.Cmd, config.Args...)

	if len(config.Env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), config.Env)
	}

	if config.Cwd != "" {
		cmd.Dir = config.Cwd
	}

	// the pipes are created here instead of via cmd.StdoutPipe, as
	// cmd.Wait closes those as soon as the process exits, dropping
	// output that has not been read yet.
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		stdoutR.Close()
		stdoutW.Close()
		return nil, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	initCmd(cmd)

	err = cmd.Start()

	// the child owns its copies of the write ends now
	stdoutW.Close()
	stderrW.Close()

	if err != nil {
		stdoutR.Close()
		stderrR.Close()
		return nil, err
	}

	log = log.Named("proc").With(zap.Int("pid", cmd.Process.Pid))

	process := &proc{
		pid:         cmd.Process.Pid,
		termination: make(chan struct{}),
		stdout:      stdoutR,
		stderr:      stderrR,
		log:         log,
	}

	go func() {
		// block until the process exits and is reaped
		process.exitErr = cmd.Wait()

		// signal termination to all waiters
		close(process.termination)
	}()

	return process, nil
}

// Terminate sends SIGTERM to the process group and waits for the
// process to exit. See waitForTermination for the timeout semantics.
func (p *proc) Terminate(timeout time.Duration) error {
	// terminate should report success if the process terminated
	// by the time supervisor receives the request.
	select {
	case <-p.termination:
		p.log.Debug("process already terminated")
		return nil
	default:
		// continue
	}

	p.kill(false)

	return p.waitForTermination(timeout)
}

// Kill sends SIGKILL to the process group and waits for the
// process to exit. See waitForTermination for the timeout semantics.
func (p *proc) Kill(timeout time.Duration) error {
	// kill should report success if the process terminated by the time
	// supervisor receives the request.
	select {
	case <-p.termination:
		p.log.Debug("process already terminated")
		return nil
	default:
		// continue
	}

	p.kill(true)

	return p.waitForTermination(timeout)
}

// Wait blocks until the process has exited and returns the error
// reported by exec.Cmd.Wait.
func (p *proc) Wait() error {
	<-p.termination
	return p.exitErr
}

// Done returns a channel that is closed once the process is reaped.
func (p *proc) Done() <-chan struct{} {
	return p.termination
}

func (p *proc) Pid() int {
	return p.pid
}

func (p *proc) waitForTermination(timeout time.Duration) error {
	// if timeout is < 0, don't wait for the process to exit
	if timeout < 0 {
		return nil
	}

	// if timeout is 0, wait indefinitely
	if timeout == 0 {
		<-p.termination
		return nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-p.termination:
		return nil
	case <-timer.C:
		return ErrKillTimeout
	}
}

func (p *proc) kill(force bool) {
	log := p.log.With(zap.Bool("force", force))

	log.Debug("sending signal")

	// best effort, the process may have exited in the meantime
	if err := p.signal(force); err != nil {
		log.Debug("signal failed", zap.Error(err))
	}
}

// StdoutPipe returns the read end of the process's standard output.
func (p *proc) StdoutPipe() io.ReadCloser {
	return p.stdout
}

// StderrPipe returns the read end of the process's standard error.
func (p *proc) StderrPipe() io.ReadCloser {
	return p.stderr
}

func mergeEnv(base []string, extra map[string]string) []string {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(extra))
	env = append(env, base...)

	// exec.Cmd keeps the last value of duplicate keys
	for _, k := range keys {
		env = append(env, fmt.Sprintf("%s=%s", k, extra[k]))
	}

	return env
}
