// Package stacktrace captures and formats call stacks for failure reports.
//
// Capture resolves program counters through runtime.CallersFrames so inlined
// calls appear as their logical frames. Formatting is a separate concern:
// a Formatter owns the theme, the frame filters, and the snippet policy, so
// the same captured trace can render differently at different verbosity
// levels.
package stacktrace

import (
	"runtime"
)

// DefaultMaxDepth bounds capture when the caller does not supply a limit.
const DefaultMaxDepth = 64

// Frame is a single resolved call site, most recent call first in a Trace.
type Frame struct {
	PC       uintptr
	Function string
	File     string
	Line     int
}

// Trace holds the frames captured for one failure.
type Trace struct {
	Frames []Frame
}

// Capture records the current goroutine's stack, skipping skip frames above
// the caller of Capture. A maxDepth of zero or less falls back to
// DefaultMaxDepth. Capture never fails; when nothing can be recorded the
// returned Trace is empty.
func Capture(skip, maxDepth int) *Trace {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	// +2 skips runtime.Callers and Capture itself, so the first recorded
	// frame is Capture's caller when skip is zero.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return &Trace{}
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}
	return &Trace{Frames: out}
}

// Empty reports whether the trace recorded no frames.
func (t *Trace) Empty() bool {
	return t == nil || len(t.Frames) == 0
}
