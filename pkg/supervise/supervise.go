// Package supervise is the failure boundary for panics: instead of using
// stack unwinding as a data channel, it converts an uncaught panic into a
// regular error carrying a full report, and offers a top-level runner that
// renders any failure and exits.
package supervise

import (
	"fmt"
	"os"

	"github.com/arthur-debert/debrief/pkg/debrief"
)

// Call runs fn and converts a panic into a panic-flagged report returned
// through the normal error channel. Errors and nil results pass through
// untouched.
func Call(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = debrief.NewPanic(v, nil)
		}
	}()
	return fn()
}

// Main runs fn under Call, renders any failure to stderr and exits with
// status 1. Intended as the body of main:
//
//	func main() {
//		supervise.Main(run)
//	}
func Main(fn func() error) {
	err := Call(fn)
	if err == nil {
		return
	}
	report := debrief.From(err)
	if renderErr := report.Render(os.Stderr); renderErr != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}
