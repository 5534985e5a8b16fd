// Package console serializes the output of all supervised tools, and of
// the launcher itself, onto a shared stdout and stderr. Every write holds
// the console lock for exactly one line, so lines never interleave.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

type flusher interface {
	Flush() error
}

type Console struct {
	lock   sync.Mutex
	stdout io.Writer
	stderr io.Writer
	color  bool
}

type Option func(*Console)

// WithColor enables or disables ANSI colors on tool lines and banners.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.color = enabled
	}
}

func New(stdout, stderr io.Writer, opts ...Option) *Console {
	c := &Console{
		stdout: stdout,
		stderr: stderr,
		color:  true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Line writes `<color><prefix>: <text><reset>` to the given stream.
func (c *Console) Line(stream Stream, color Color, prefix, text string) error {
	var b strings.Builder

	b.Grow(len(color) + len(prefix) + len(text) + len(Reset) + 3)

	if c.color {
		b.WriteString(string(color))
	}
	b.WriteString(prefix)
	b.WriteString(": ")
	b.WriteString(text)
	if c.color {
		b.WriteString(string(Reset))
	}
	b.WriteByte('\n')

	return c.write(c.writer(stream), b.String())
}

// Noticef writes a launcher banner to stdout. Colors left over from
// a tool line are reset first.
func (c *Console) Noticef(format string, args ...any) {
	c.banner(c.stdout, format, args...)
}

// Errorf writes a launcher banner to stderr.
func (c *Console) Errorf(format string, args ...any) {
	c.banner(c.stderr, format, args...)
}

// Sink returns a zap write syncer that writes to stderr while
// holding the console lock.
func (c *Console) Sink() zapcore.WriteSyncer {
	return &sink{console: c}
}

func (c *Console) banner(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.color {
		msg = string(Reset) + msg
	}

	_ = c.write(w, msg+"\n")
}

func (c *Console) writer(stream Stream) io.Writer {
	if stream == Stderr {
		return c.stderr
	}
	return c.stdout
}

func (c *Console) write(w io.Writer, s string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, err := io.WriteString(w, s); err != nil {
		return err
	}

	if f, ok := w.(flusher); ok {
		return f.Flush()
	}

	return nil
}

type sink struct {
	console *Console
}

func (s *sink) Write(p []byte) (int, error) {
	s.console.lock.Lock()
	defer s.console.lock.Unlock()

	return s.console.stderr.Write(p)
}

func (s *sink) Sync() error {
	s.console.lock.Lock()
	defer s.console.lock.Unlock()

	switch w := s.console.stderr.(type) {
	case zapcore.WriteSyncer:
		// syncing a terminal or pipe fails with EINVAL, which is harmless
		_ = w.Sync()
	case flusher:
		return w.Flush()
	}

	return nil
}
