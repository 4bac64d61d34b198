//go:build !unix

package debrief

import "os"

// terminationSignal has no portable meaning here; the exit-status text
// falls back to the code or the generic phrasing.
func terminationSignal(*os.ProcessState) (int, bool) {
	return 0, false
}
