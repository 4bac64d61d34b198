// Package cli assembles the debrief-demo command tree. Each subcommand
// fails on purpose; the failures flow back through cobra to the supervisor
// in cmd/debrief-demo, which renders them with the library itself.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/debrief/internal/version"
	"github.com/arthur-debert/debrief/pkg/cobrax/topics"
	"github.com/arthur-debert/debrief/pkg/config"
	"github.com/arthur-debert/debrief/pkg/hooks"
	"github.com/arthur-debert/debrief/pkg/logging"
	"github.com/arthur-debert/debrief/pkg/spantrace"
	"github.com/arthur-debert/debrief/pkg/theme"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		themeName string
	)

	rootCmd := &cobra.Command{
		Use:   "debrief-demo",
		Short: "Showcase debrief error reports",
		Long: `debrief-demo runs deliberately failing operations so you can see how
debrief aggregates notes, warnings, suggestions and sections onto errors
and renders them with stack and span diagnostics.

Report detail is controlled by environment variables: leave DEBRIEF_TRACE
unset for minimal reports, set it to 1 for stack traces, or to full for
stack traces with source snippets.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return installHooks(themeName)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Force a theme preset instead of terminal detection (dark, light, plain)")

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newUsageCmd())
	rootCmd.AddCommand(newSectionsCmd())
	rootCmd.AddCommand(newCommandCmd())
	rootCmd.AddCommand(newPanicCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newConfigInitCmd())

	initTopicHelp(rootCmd)
	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	return rootCmd
}

// installHooks wires the reporting runtime: user settings first, then the
// command line override on top, plus a span recorder so the demo scenarios
// produce span traces.
func installHooks(themeName string) error {
	defer logging.LogOperationStart(logging.GetLogger("cli"), "install hooks")()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	b := hooks.NewBuilder().
		Settings(settings).
		SpanRecorder(spantrace.NewCollector()).
		PanicSection("consider reporting the bug at https://github.com/arthur-debert/debrief/issues")
	if themeName != "" {
		b.ThemeNamed(themeName)
	}
	return b.Install()
}

// initTopicHelp registers the markdown help topics under docs/help, looked
// up the way an installed or an in-tree binary would find them.
func initTopicHelp(rootCmd *cobra.Command) {
	exe, err := os.Executable()
	if err != nil {
		return
	}

	possiblePaths := []string{
		filepath.Join(filepath.Dir(exe), "..", "..", "docs", "help"), // Development
		filepath.Join(filepath.Dir(exe), "docs", "help"),             // Installed
		"docs/help", // Current directory
	}

	for _, helpPath := range possiblePaths {
		if _, err := os.Stat(helpPath); err == nil {
			opts := topics.Options{Renderer: topics.NewGlamourRenderer()}
			if err := topics.InitializeWithOptions(rootCmd, helpPath, opts); err == nil {
				break
			}
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("debrief-demo version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Produce the canonical annotated failure",
		Long: `Usage reads a config file that does not exist and returns the failure
annotated with a note and a suggestion: the smallest interesting report.`,
		Example: `  # Minimal report
  debrief-demo usage

  # Same failure with a stack trace
  DEBRIEF_LIB_TRACE=1 debrief-demo usage

  # Stack trace plus source snippets
  DEBRIEF_LIB_TRACE=full debrief-demo usage`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Msg("Running the usage scenario")
			return readConfig()
		},
	}
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "Attach custom sections to a failure",
		Long: `Sections fails a fake sync and decorates the error with body sections,
a styled markup payload, an auxiliary error, a suppressed section, and a
footer section placed after the diagnostics.`,
		Example: `  debrief-demo sections`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Msg("Running the sections scenario")
			return syncMirrors()
		},
	}
}

func newCommandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command",
		Short: "Summarize a failed subprocess",
		Long: `Command runs a bash one-liner with broken quoting and uses ContextFrom
to attach the command line, its exit status and its captured streams to
the resulting error.`,
		Example: `  debrief-demo command`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Msg("Running the command scenario")
			return visitTheShell()
		},
	}
}

func newPanicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panic",
		Short: "Crash and render the panic report",
		Long: `Panic reads a file that does not exist and panics on the failure. The
supervisor converts the panic into a report carrying the panic message,
its location and the configured bug-reporting section.`,
		Example: `  debrief-demo panic

  # Panic verbosity follows DEBRIEF_TRACE
  DEBRIEF_TRACE=1 debrief-demo panic`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Msg("Running the panic scenario")
			crashOnMissingFile("fake_file")
			return nil
		},
	}
}

func newThemesCmd() *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List theme presets",
		Long: `Themes lists the available theme presets. With --sample it renders the
same annotated failure once per preset so the palettes can be compared.`,
		Example: `  # List preset names
  debrief-demo themes

  # Render a sample report in every preset
  debrief-demo themes --sample`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sample {
				for _, name := range theme.Names() {
					fmt.Println(name)
				}
				return nil
			}
			return renderThemeSamples(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "Render a sample report in every preset")

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config-init",
		Short: "Generate the default configuration",
		Long: `Config-init prints the default configuration as a commented TOML
document. With --write it is saved to the user config path instead, where
debrief picks it up on the next run.`,
		Example: `  # Inspect the defaults
  debrief-demo config-init

  # Write them to the config file
  debrief-demo config-init --write`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				content, err := config.GenerateDefaultContent()
				if err != nil {
					return err
				}
				fmt.Print(content)
				return nil
			}

			path := config.DefaultPath()
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Printf("Wrote default configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to file instead of stdout")

	return cmd
}
