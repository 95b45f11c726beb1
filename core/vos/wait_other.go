//go:build !unix

package vos

import "os"

func waitForExit(proc *os.Process) (int, error) {
	state, err := proc.Wait()
	if err != nil {
		return 0, err
	}
	return state.ExitCode(), nil
}
