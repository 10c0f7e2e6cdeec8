package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/imamik/podctl/cmd/podctl/handlers"
)

// Debug returns the command that prints argument and environment
// diagnostics and tries to parse its arguments as deploy flags.
func Debug() *cobra.Command {
	return &cobra.Command{
		Use:   "debug [args...]",
		Short: "Print argument and environment diagnostics",
		Long: `Print how podctl sees its command line and environment, then try to
parse the remaining arguments with the deploy command's flags.

Useful when podctl runs inside containers or wrappers that rewrite
arguments. This command never fails.

Examples:
  podctl debug -- --config prod.yaml --no-wait`,
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, args []string) error {
			handlers.Debug(os.Args, args, parseDeployArgs)
			return nil
		},
	}
}

// parseDeployArgs parses args with a fresh deploy flag set. Flag parsing
// is disabled on debug, so a leading "--" separator arrives here verbatim
// and is dropped.
func parseDeployArgs(args []string) (*handlers.ParseResult, error) {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	var opts handlers.DeployOptions
	fs := pflag.NewFlagSet("deploy", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	bindDeployFlags(fs, &opts)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	result := &handlers.ParseResult{Args: fs.Args()}
	fs.VisitAll(func(f *pflag.Flag) {
		result.Flags = append(result.Flags, handlers.ParsedFlag{
			Name:    f.Name,
			Value:   f.Value.String(),
			Changed: f.Changed,
		})
	})
	return result, nil
}
