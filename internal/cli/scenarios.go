package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/debrief/pkg/config"
	"github.com/arthur-debert/debrief/pkg/debrief"
	"github.com/arthur-debert/debrief/pkg/spantrace"
	"github.com/arthur-debert/debrief/pkg/stacktrace"
	"github.com/arthur-debert/debrief/pkg/theme"
)

// readConfig mimics an application startup path: a span for the logical
// operation, a failing read, help entries attached on the way out.
func readConfig() error {
	defer spantrace.Enter("reading config", "path", "fake_file")()

	if err := readFile("fake_file"); err != nil {
		return debrief.Wrap(err, "Unable to read config").
			Note("the config file is optional").
			Suggestion("try using a file that exists next time")
	}
	return nil
}

func readFile(path string) error {
	defer spantrace.Enter("reading file", "path", path)()

	if _, err := os.ReadFile(path); err != nil {
		return err
	}
	return nil
}

// syncMirrors fails a fake sync and exercises every section flavor: plain
// bodies, markup payloads, suppression, auxiliary errors, and a footer
// placed after the diagnostics.
func syncMirrors() error {
	defer spantrace.Enter("syncing mirrors", "count", 2)()

	skipped := []string{}
	err := errors.New("remote rejected the manifest")

	return debrief.AddSection(
		debrief.From(err).
			Section(debrief.NewSection("Manifest:").WithBody("mirrors: eu-west, us-east\nrevision: 4f2a91c")).
			Section(debrief.NewSection("Hint:").
				WithBody(debrief.Markup("run with <hint>--verbose</hint> to log the full exchange"))).
			AddError(fmt.Errorf("rolling back: %w", errors.New("lock already released"))).
			Warning("the local cache is now out of date"),
		debrief.NewSection("Skipped mirrors:").
			WithBody(fmt.Sprint(skipped)).
			SkipIf(func() bool { return len(skipped) == 0 }).
			Place(debrief.PlaceAfterDiagnostics),
	)
}

// visitTheShell runs a bash one-liner with broken quoting and attaches the
// command, its exit status and its streams to the failure.
func visitTheShell() error {
	defer spantrace.Enter("visiting the shell")()

	cmd := exec.Command("bash", "-c",
		// uh oh, there's an extra ' in that string and bash isn't gonna like it!
		"echo 'Hello bash, I hope you're doing well!'")

	out, err := debrief.CaptureOutput(cmd)
	if err != nil {
		err = debrief.Wrap(err, "invalid bash command").ContextFrom(cmd)
		return debrief.ContextFrom(err, out)
	}
	return nil
}

// crashOnMissingFile panics the way careless code does, handing the
// supervisor a real panic to report.
func crashOnMissingFile(path string) {
	defer spantrace.Enter("reading file", "path", path)()

	if _, err := os.ReadFile(path); err != nil {
		panic(err)
	}
}

// renderThemeSamples renders one annotated failure per theme preset so the
// palettes can be compared side by side.
func renderThemeSamples(w io.Writer) error {
	base := errors.New("connection reset by peer")
	sample := debrief.Wrap(base, "fetching the manifest").
		Section(debrief.NewSection("Server:").WithBody("manifests.example.com:443")).
		Note("note").
		Warning("warning").
		Suggestion("suggestion")

	for _, name := range theme.Names() {
		th, _ := theme.ByName(name)
		rt := &debrief.Runtime{
			Theme:    th,
			Filters:  stacktrace.DefaultFilters(),
			Settings: config.Default(),
		}
		if _, err := fmt.Fprintf(w, "=== %s ===\n\n", name); err != nil {
			return err
		}
		if err := sample.RenderWith(w, rt); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, "\n\n"); err != nil {
			return err
		}
	}
	return nil
}
