//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package util

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsProcessAlive reports whether a process with the given pid exists.
// Reaped processes are gone, unreaped ones (zombies) still exist.
func IsProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	err := unix.Kill(pid, 0)

	// EPERM: the process exists, but belongs to another user
	return err == nil || errors.Is(err, unix.EPERM)
}
