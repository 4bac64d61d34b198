package spantrace

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// Collector is the built-in Recorder: a mutex-guarded set of per-goroutine
// span stacks. Spans close LIFO via the closure returned by Enter; closing
// twice is harmless.
type Collector struct {
	mu     sync.Mutex
	stacks map[uint64][]Span
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{stacks: make(map[uint64][]Span)}
}

// Enter pushes a span onto the calling goroutine's stack and returns the
// closure that pops it.
func (c *Collector) Enter(name string, kv ...any) func() {
	span := Span{Name: name, Fields: pairFields(kv)}
	span.File, span.Line = callerOutside()

	gid := goroutineID()
	c.mu.Lock()
	c.stacks[gid] = append(c.stacks[gid], span)
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { c.exit(gid) })
	}
}

func (c *Collector) exit(gid uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stack := c.stacks[gid]
	if len(stack) == 0 {
		return
	}
	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(c.stacks, gid)
		return
	}
	c.stacks[gid] = stack
}

// Snapshot returns the calling goroutine's open spans, most recent first.
func (c *Collector) Snapshot() []Span {
	gid := goroutineID()

	c.mu.Lock()
	defer c.mu.Unlock()

	stack := c.stacks[gid]
	if len(stack) == 0 {
		return nil
	}
	out := make([]Span, len(stack))
	for i, s := range stack {
		out[len(stack)-1-i] = s
	}
	return out
}

// goroutineID extracts the current goroutine ID using runtime.Stack.
// This is a lightweight approach that doesn't require linkname or unsafe.
func goroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]

	// Stack format: "goroutine 123 [running]:\n..."
	// Extract the number between "goroutine " and " ["
	const prefix = "goroutine "
	if !bytes.HasPrefix(buf, []byte(prefix)) {
		return 0
	}

	buf = buf[len(prefix):]
	end := bytes.IndexByte(buf, ' ')
	if end < 0 {
		return 0
	}

	gid, err := strconv.ParseUint(string(buf[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return gid
}
