// Package cli implements the quaxtools command-line interface.
//
// This package provides the two release-pipeline commands of the quax project:
// icon generation and commit author attribution. The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
//   - icons: Render assets/icon.svg into the PNG icon set
//   - author: Print "(by <name>) " for a commit, for release notes
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Settings are read from quaxtools.toml in the working directory when present
// (or from --config). Command flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr so command output on stdout stays machine-readable.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/teskann/quaxtools/pkg/buildinfo"
	"github.com/teskann/quaxtools/pkg/config"
	"github.com/teskann/quaxtools/pkg/observability"
)

// appName is the application name used for display.
const appName = "quaxtools"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // command results; status lines for icons

	configPath string
}

// New creates a new CLI instance. Results go to out, logs to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Release tooling for quax",
		Long:          `quaxtools bundles the quax release helpers: rendering the application icon set and crediting commit authors in release notes.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := logHooks{logger: c.Logger}
			observability.SetHTTPHooks(hooks)
			observability.SetIconHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+config.DefaultPath+" if present)")

	root.AddCommand(c.iconsCommand())
	root.AddCommand(c.authorCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads --config, or the default file when it exists.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath, false)
	}
	return config.Load(config.DefaultPath, true)
}
