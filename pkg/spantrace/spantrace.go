// Package spantrace records logical call spans and snapshots them into the
// failure report pipeline.
//
// A span is an application-level marker ("resolving host", "loading manifest")
// rather than a stack frame. Code brackets work with Enter and the returned
// exit closure; when a failure is captured, the spans still open on the
// failing goroutine become the report's span trace. Capture is explicit
// about its three outcomes: no recorder installed, a recorder with nothing
// open, or actual spans.
package spantrace

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
)

// Field is one key=value pair attached to a span, in argument order.
type Field struct {
	Key   string
	Value string
}

// Span is a single logical call still open at capture time.
type Span struct {
	Name   string
	Fields []Field
	File   string
	Line   int
}

// Status distinguishes "no recorder" from "recorder saw nothing".
type Status int

const (
	// Unsupported means no recorder was installed when capture ran.
	Unsupported Status = iota
	// Empty means a recorder was installed but no spans were open.
	Empty
	// Captured means at least one span was recorded.
	Captured
)

// Trace is the snapshot taken at failure time, most recent span first.
type Trace struct {
	Status Status
	Spans  []Span
}

// Recorder tracks open spans. Enter returns the closure that closes the
// span; Snapshot lists the spans open on the calling goroutine, most
// recent first.
type Recorder interface {
	Enter(name string, kv ...any) func()
	Snapshot() []Span
}

type holder struct {
	r Recorder
}

var current atomic.Pointer[holder]

// SetRecorder installs the process-wide recorder. Passing nil uninstalls
// it. Installation policy (first wins) is enforced by the hooks layer.
func SetRecorder(r Recorder) {
	current.Store(&holder{r: r})
}

func installed() Recorder {
	if h := current.Load(); h != nil {
		return h.r
	}
	return nil
}

// Capture snapshots the installed recorder. It never fails: a missing
// recorder yields an Unsupported trace and an idle recorder yields an
// Empty one.
func Capture() *Trace {
	r := installed()
	if r == nil {
		return &Trace{Status: Unsupported}
	}
	spans := r.Snapshot()
	if len(spans) == 0 {
		return &Trace{Status: Empty}
	}
	return &Trace{Status: Captured, Spans: spans}
}

// Enter opens a span on the installed recorder and returns its exit
// closure. With no recorder installed the closure is a no-op, so call
// sites never need to care whether recording is on.
func Enter(name string, kv ...any) func() {
	if r := installed(); r != nil {
		return r.Enter(name, kv...)
	}
	return func() {}
}

func pairFields(kv []any) []Field {
	if len(kv) == 0 {
		return nil
	}
	fields := make([]Field, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		f := Field{Key: fmt.Sprint(kv[i])}
		if i+1 < len(kv) {
			f.Value = fmt.Sprint(kv[i+1])
		}
		fields = append(fields, f)
	}
	return fields
}

// callerOutside finds the nearest caller that is not this package, so the
// recorded location is right whether Enter was called directly on a
// Collector or through the package-level helper.
func callerOutside() (string, int) {
	pc := make([]uintptr, 8)
	n := runtime.Callers(2, pc)
	if n == 0 {
		return "", 0
	}
	frames := runtime.CallersFrames(pc[:n])
	for {
		fr, more := frames.Next()
		if !strings.HasPrefix(fr.Function, "github.com/arthur-debert/debrief/pkg/spantrace.") {
			return fr.File, fr.Line
		}
		if !more {
			return "", 0
		}
	}
}
