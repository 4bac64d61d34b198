package stacktrace

import (
	"runtime"
	"strings"
)

// FilterFunc reports whether a frame should be hidden from output.
type FilterFunc func(Frame) bool

var goroot = runtime.GOROOT()

// internalPrefixes are this library's own capture and aggregation packages.
// Their frames are plumbing between the failure site and the report and
// carry no diagnostic value for the reader.
var internalPrefixes = []string{
	"github.com/arthur-debert/debrief/pkg/debrief.",
	"github.com/arthur-debert/debrief/pkg/stacktrace.",
	"github.com/arthur-debert/debrief/pkg/spantrace.",
	"github.com/arthur-debert/debrief/pkg/hooks.",
	"github.com/arthur-debert/debrief/pkg/supervise.",
}

// IsRuntime reports whether the frame belongs to the Go runtime or the
// testing harness.
func (f Frame) IsRuntime() bool {
	return strings.HasPrefix(f.Function, "runtime.") ||
		strings.HasPrefix(f.Function, "testing.")
}

// IsDependency reports whether the frame's source lives outside the user's
// code: the standard library or the module cache.
func (f Frame) IsDependency() bool {
	if goroot != "" && strings.HasPrefix(f.File, goroot) {
		return true
	}
	return strings.Contains(f.File, "/pkg/mod/")
}

// DefaultFilters hides runtime and testing internals plus this library's
// own frames. The set renders a trace that starts where user code does.
func DefaultFilters() []FilterFunc {
	return []FilterFunc{hideRuntime, hideInternal}
}

func hideRuntime(f Frame) bool {
	return f.IsRuntime()
}

func hideInternal(f Frame) bool {
	for _, prefix := range internalPrefixes {
		if strings.HasPrefix(f.Function, prefix) {
			return true
		}
	}
	return false
}
