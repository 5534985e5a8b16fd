//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package worker

import (
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

func (p *proc) signal(force bool) error {
	sig := unix.SIGTERM
	if force {
		sig = unix.SIGKILL
	}

	var err error
	if pgid, pgErr := unix.Getpgid(p.pid); pgErr == nil {
		// Negative pid sends signal to all in process group
		err = unix.Kill(-pgid, sig)
	} else {
		err = unix.Kill(p.pid, sig)
	}

	if errors.Is(err, unix.ESRCH) {
		return nil
	}

	return err
}

func initCmd(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}
