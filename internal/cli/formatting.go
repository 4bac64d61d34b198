package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stdoutStyled reports whether stdout can take ANSI styling.
func stdoutStyled() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// heading renders a usage-template section heading: uppercased, bold when
// stdout is a terminal.
func heading(s string) string {
	s = strings.ToUpper(s)
	if !stdoutStyled() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// faint de-emphasizes the trailing hint lines of the usage output.
func faint(s string) string {
	if !stdoutStyled() {
		return s
	}
	return pterm.FgGray.Sprint(s)
}

// initTemplateFormatting registers the functions the usage template calls.
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"heading": heading,
		"faint":   faint,
	})
}
