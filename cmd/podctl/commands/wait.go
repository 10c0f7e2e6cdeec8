package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/podctl/cmd/podctl/handlers"
)

// Wait returns the command that waits for a previously deployed pod.
func Wait() *cobra.Command {
	var opts handlers.WaitOptions

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait for a deployed pod to become ready",
		Long: `Wait for the pod in a saved deployment record to answer 200 OK.

Use this after 'podctl deploy --no-wait', or to resume waiting after an
interrupted deploy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Wait(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: podctl.yaml)")
	cmd.Flags().StringVar(&opts.RecordPath, "record", "", "Deployment record path (default: from config)")
	cmd.Flags().BoolVar(&opts.ProbeStream, "probe-stream", false, "Open the WebSocket endpoint after the pod is ready")

	return cmd
}
