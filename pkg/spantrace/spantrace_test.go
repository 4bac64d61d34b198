package spantrace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/debrief/pkg/spantrace"
	"github.com/arthur-debert/debrief/pkg/theme"
)

func TestCollector(t *testing.T) {
	t.Run("spans close LIFO", func(t *testing.T) {
		c := spantrace.NewCollector()

		exitOuter := c.Enter("outer")
		exitInner := c.Enter("inner")

		spans := c.Snapshot()
		require.Len(t, spans, 2)
		assert.Equal(t, "inner", spans[0].Name)
		assert.Equal(t, "outer", spans[1].Name)

		exitInner()
		spans = c.Snapshot()
		require.Len(t, spans, 1)
		assert.Equal(t, "outer", spans[0].Name)

		exitOuter()
		assert.Empty(t, c.Snapshot())
	})

	t.Run("closing twice is harmless", func(t *testing.T) {
		c := spantrace.NewCollector()

		exitOuter := c.Enter("outer")
		defer exitOuter()
		exitInner := c.Enter("inner")

		exitInner()
		exitInner()

		spans := c.Snapshot()
		require.Len(t, spans, 1)
		assert.Equal(t, "outer", spans[0].Name)
	})

	t.Run("fields keep argument order", func(t *testing.T) {
		c := spantrace.NewCollector()
		defer c.Enter("resolve", "host", "db.internal", "attempt", 2)()

		spans := c.Snapshot()
		require.Len(t, spans, 1)
		require.Len(t, spans[0].Fields, 2)
		assert.Equal(t, spantrace.Field{Key: "host", Value: "db.internal"}, spans[0].Fields[0])
		assert.Equal(t, spantrace.Field{Key: "attempt", Value: "2"}, spans[0].Fields[1])
	})

	t.Run("dangling key gets empty value", func(t *testing.T) {
		c := spantrace.NewCollector()
		defer c.Enter("op", "orphan")()

		spans := c.Snapshot()
		require.Len(t, spans, 1)
		require.Len(t, spans[0].Fields, 1)
		assert.Equal(t, spantrace.Field{Key: "orphan", Value: ""}, spans[0].Fields[0])
	})

	t.Run("records the call site", func(t *testing.T) {
		c := spantrace.NewCollector()
		defer c.Enter("located")()

		spans := c.Snapshot()
		require.Len(t, spans, 1)
		assert.True(t, strings.HasSuffix(spans[0].File, "spantrace_test.go"),
			"expected test file as call site, got %q", spans[0].File)
		assert.Positive(t, spans[0].Line)
	})

	t.Run("goroutines are isolated", func(t *testing.T) {
		c := spantrace.NewCollector()
		defer c.Enter("main-side")()

		opened := make(chan struct{})
		release := make(chan struct{})
		done := make(chan []spantrace.Span)
		go func() {
			exit := c.Enter("worker-side")
			close(opened)
			<-release
			spans := c.Snapshot()
			exit()
			done <- spans
		}()

		<-opened
		spans := c.Snapshot()
		require.Len(t, spans, 1)
		assert.Equal(t, "main-side", spans[0].Name)

		close(release)
		workerSpans := <-done
		require.Len(t, workerSpans, 1)
		assert.Equal(t, "worker-side", workerSpans[0].Name)
	})
}

func TestCapture(t *testing.T) {
	t.Run("no recorder means unsupported", func(t *testing.T) {
		spantrace.SetRecorder(nil)

		tr := spantrace.Capture()
		assert.Equal(t, spantrace.Unsupported, tr.Status)
		assert.Empty(t, tr.Spans)
	})

	t.Run("idle recorder means empty", func(t *testing.T) {
		spantrace.SetRecorder(spantrace.NewCollector())
		defer spantrace.SetRecorder(nil)

		tr := spantrace.Capture()
		assert.Equal(t, spantrace.Empty, tr.Status)
	})

	t.Run("open spans are captured most recent first", func(t *testing.T) {
		spantrace.SetRecorder(spantrace.NewCollector())
		defer spantrace.SetRecorder(nil)

		exitOuter := spantrace.Enter("outer")
		defer exitOuter()
		exitInner := spantrace.Enter("inner", "n", 1)
		defer exitInner()

		tr := spantrace.Capture()
		require.Equal(t, spantrace.Captured, tr.Status)
		require.Len(t, tr.Spans, 2)
		assert.Equal(t, "inner", tr.Spans[0].Name)
		assert.Equal(t, "outer", tr.Spans[1].Name)
	})

	t.Run("package Enter without recorder is a no-op", func(t *testing.T) {
		spantrace.SetRecorder(nil)

		exit := spantrace.Enter("ignored")
		require.NotNil(t, exit)
		exit()
	})
}

func TestFormatter(t *testing.T) {
	t.Run("numbered spans with fields and locations", func(t *testing.T) {
		tr := &spantrace.Trace{
			Status: spantrace.Captured,
			Spans: []spantrace.Span{
				{
					Name:   "resolve",
					Fields: []spantrace.Field{{Key: "host", Value: "db.internal"}, {Key: "attempt", Value: "2"}},
					File:   "/src/app/dial.go",
					Line:   17,
				},
				{Name: "connect", File: "/src/app/main.go", Line: 9},
			},
		}

		var buf bytes.Buffer
		spantrace.Formatter{Theme: theme.Plain()}.Format(&buf, tr)

		want := "Span trace (most recent span first):\n" +
			"   0: resolve host=db.internal attempt=2\n" +
			"      at /src/app/dial.go:17\n" +
			"   1: connect\n" +
			"      at /src/app/main.go:9\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("span without location renders the name line only", func(t *testing.T) {
		tr := &spantrace.Trace{
			Status: spantrace.Captured,
			Spans:  []spantrace.Span{{Name: "bare"}},
		}

		var buf bytes.Buffer
		spantrace.Formatter{Theme: theme.Plain()}.Format(&buf, tr)

		assert.Equal(t, "Span trace (most recent span first):\n   0: bare\n", buf.String())
	})

	t.Run("non-captured traces render nothing", func(t *testing.T) {
		var buf bytes.Buffer
		f := spantrace.Formatter{Theme: theme.Plain()}
		f.Format(&buf, &spantrace.Trace{Status: spantrace.Unsupported})
		f.Format(&buf, &spantrace.Trace{Status: spantrace.Empty})
		f.Format(&buf, nil)
		assert.Empty(t, buf.String())
	})
}
