// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/podctl/cmd/podctl/handlers"
)

// Root returns the root command for the podctl CLI.
//
// Persistent flags configure logging and an optional dotenv file, which are
// applied before any subcommand runs.
func Root() *cobra.Command {
	var (
		logLevel  string
		logFormat string
		envFile   string
	)

	cmd := &cobra.Command{
		Use:           "podctl",
		Short:         "Deploy the WhisperLiveKit STT service to RunPod",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Setup(logLevel, logFormat, envFile)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warning, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from a dotenv file")

	cmd.AddCommand(Deploy())
	cmd.AddCommand(Wait())
	cmd.AddCommand(Debug())
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
