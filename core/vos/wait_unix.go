//go:build unix

package vos

import (
	"os"

	"golang.org/x/sys/unix"
)

// waitForExit blocks until the child exits normally or is terminated by a
// signal. Stop and continue notifications are waited through.
func waitForExit(proc *os.Process) (int, error) {
	defer proc.Release()

	for {
		var ws unix.WaitStatus
		_, err := unix.Wait4(proc.Pid, &ws, unix.WUNTRACED|unix.WCONTINUED, nil)
		switch {
		case err == unix.EINTR:
			continue
		case err != nil:
			return 0, err
		case ws.Exited():
			return ws.ExitStatus(), nil
		case ws.Signaled():
			return 128 + int(ws.Signal()), nil
		}
	}
}
