package debrief

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Output carries everything captured from a finished command, for use with
// ContextFrom. CaptureOutput is the usual way to build one.
type Output struct {
	State  *os.ProcessState
	Stdout []byte
	Stderr []byte
}

// CaptureOutput runs cmd with both streams captured and returns them
// together with the process state. The error is cmd.Run's, so callers keep
// the usual exec semantics and can feed the Output to ContextFrom on the
// failure path.
func CaptureOutput(cmd *exec.Cmd) (*Output, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return &Output{
		State:  cmd.ProcessState,
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}, err
}

// contextSections builds the sections for one ContextFrom source.
func contextSections(source any) []*Section {
	switch v := source.(type) {
	case *exec.Cmd:
		return []*Section{NewSection("Command:").WithBody(v.String())}
	case *os.ProcessState:
		return []*Section{exitStatusSection(v)}
	case *exec.ExitError:
		return []*Section{
			exitStatusSection(v.ProcessState),
			NewSection("Stderr:").WithBody(decodeStream(v.Stderr)),
		}
	case *Output:
		return []*Section{
			exitStatusSection(v.State),
			NewSection("Stdout:").WithBody(decodeStream(v.Stdout)),
			NewSection("Stderr:").WithBody(decodeStream(v.Stderr)),
		}
	default:
		return []*Section{NewSection("Context:").WithBody(fmt.Sprint(source))}
	}
}

func exitStatusSection(state *os.ProcessState) *Section {
	return NewSection("Exit Status:").WithBody(exitStatusText(state))
}

func exitStatusText(state *os.ProcessState) string {
	if state == nil {
		return statusText(false, -1, 0, false)
	}
	sig, hasSig := terminationSignal(state)
	return statusText(state.Success(), state.ExitCode(), sig, hasSig)
}

// statusText picks exactly one of the three exit-status phrasings. A
// numeric code wins over a signal.
func statusText(success bool, code, sig int, hasSig bool) string {
	outcome := "unsuccessfully"
	if success {
		outcome = "successfully"
	}
	switch {
	case code >= 0:
		return fmt.Sprintf("command exited %s with status code %d", outcome, code)
	case hasSig:
		return fmt.Sprintf("command terminated %s by signal %d", outcome, sig)
	default:
		return fmt.Sprintf("command exited %s without a status code or signal", outcome)
	}
}

// decodeStream produces text from raw stream bytes, replacing invalid
// sequences instead of erroring.
func decodeStream(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
