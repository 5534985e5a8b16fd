package launcher

import (
	"os"
	"os/signal"
	"syscall"
)

// SignalNotifier delivers the signals that request a shutdown.
type SignalNotifier interface {
	Notify(c chan<- os.Signal)
	Stop(c chan<- os.Signal)
}

type osSignalNotifier struct{}

func NewSignalNotifier() SignalNotifier {
	return osSignalNotifier{}
}

func (osSignalNotifier) Notify(c chan<- os.Signal) {
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
}

func (osSignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}
