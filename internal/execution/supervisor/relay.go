package supervisor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/lambda-feedback/tool-launcher/internal/console"
	"go.uber.org/zap"
)

// relay starts one reader per output stream of the tool, and marks the
// handle drained once the process is reaped and both readers finished.
func (s *Supervisor) relay(h *Handle) {
	h.readers.Add(2)

	go s.readStream(h, console.Stdout, h.worker.Stdout(), h.stdoutColor)
	go s.readStream(h, console.Stderr, h.worker.Stderr(), h.stderrColor)

	go func() {
		<-h.worker.Done()
		h.readers.Wait()

		s.logExit(h)

		close(h.drained)
	}()
}

func (s *Supervisor) readStream(
	h *Handle,
	stream console.Stream,
	r io.ReadCloser,
	color console.Color,
) {
	defer h.readers.Done()

	if r == nil {
		return
	}

	defer r.Close()

	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')

		if len(line) > 0 {
			// drop everything read after a shutdown was requested
			if s.ShuttingDown() {
				return
			}

			text := strings.TrimRightFunc(line, unicode.IsSpace)
			if werr := s.console.Line(stream, color, h.Name(), text); werr != nil {
				s.log.Debug("failed to write tool output",
					zap.String("tool", h.Name()),
					zap.Stringer("stream", stream),
					zap.Error(werr),
				)
			}
		}

		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			return
		}

		// closing the stream during shutdown interrupts the read
		if s.ShuttingDown() {
			return
		}

		s.log.Error("failed to read tool output",
			zap.String("tool", h.Name()),
			zap.Int("pid", h.Pid()),
			zap.Stringer("stream", stream),
			zap.Error(&ReadError{Tool: h.Name(), Stream: stream, Err: err}),
		)

		return
	}
}

func (s *Supervisor) logExit(h *Handle) {
	evt, err := h.worker.Wait(context.Background())
	if err != nil {
		return
	}

	fields := []zap.Field{
		zap.String("tool", h.Name()),
		zap.Int("pid", h.Pid()),
	}

	if evt.Code != nil {
		fields = append(fields, zap.Int("code", *evt.Code))
	}

	if evt.Signal != nil {
		fields = append(fields, zap.Int("signal", *evt.Signal))
	}

	if s.ShuttingDown() {
		s.log.Debug("tool exited", fields...)
	} else {
		s.log.Info("tool exited", fields...)
	}
}
