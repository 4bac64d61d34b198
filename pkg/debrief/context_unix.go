//go:build unix

package debrief

import (
	"os"
	"syscall"
)

// terminationSignal extracts the signal that killed the process, when the
// platform exposes one and the process did not exit normally.
func terminationSignal(state *os.ProcessState) (int, bool) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return 0, false
	}
	if ws.Signaled() {
		return int(ws.Signal()), true
	}
	return 0, false
}
