package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Completion returns the command that prints shell completion scripts.
func Completion() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Print a shell completion script",
		Long: `Print a completion script for podctl's subcommands and flags.

The script covers deploy, wait, debug and init, including the flags
each of them accepts. Write it wherever your shell picks up completions.

  bash        podctl completion bash > ~/.local/share/bash-completion/completions/podctl
  zsh         podctl completion zsh > "${fpath[1]}/_podctl"   (needs compinit)
  fish        podctl completion fish > ~/.config/fish/completions/podctl.fish
  powershell  podctl completion powershell >> $PROFILE

For the current session only, source the output directly, e.g.
  source <(podctl completion bash)`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// writeCompletion writes the completion script for shell to out.
func writeCompletion(root *cobra.Command, shell string, out io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
}
