package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetLoggerSilentByDefault(t *testing.T) {
	orig := base
	defer SetLogger(orig)
	SetLogger(zerolog.Nop())

	logger := GetLogger("render")
	logger.Error().Msg("should go nowhere")
}

func TestSetLoggerRoutesOutput(t *testing.T) {
	orig := base
	defer SetLogger(orig)

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	logger := GetLogger("capture")
	logger.Info().Int("frames", 3).Msg("captured stack")

	out := buf.String()
	assert.Contains(t, out, `"component":"capture"`)
	assert.Contains(t, out, `"frames":3`)
	assert.Contains(t, out, "captured stack")
}

func TestLogOperationStart(t *testing.T) {
	orig := base
	defer SetLogger(orig)

	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	SetLogger(zerolog.New(&buf))

	done := LogOperationStart(GetLogger("test"), "trace-capture")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"trace-capture"`)
}
