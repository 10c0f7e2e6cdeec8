package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/imamik/podctl/cmd/podctl/handlers"
)

// Deploy returns the command that provisions a pod and waits for it.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: podctl.yaml if present)
//	--record: Where to write the deployment record
//	--no-wait: Exit after the pod is created
//	--probe-stream: Open the WebSocket endpoint once the pod is ready
//	--metrics-textfile: Write Prometheus metrics to this file
//
// Environment variables:
//
//	RUNPOD_API_KEY: RunPod API key (required)
func Deploy() *cobra.Command {
	var opts handlers.DeployOptions

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the STT service to a new GPU pod",
		Long: `Deploy the WhisperLiveKit STT service to a new RunPod GPU pod.

The pod is created with a single API call. Its id and access URLs are
written to the record file, then the pod's HTTP endpoint is polled every
10 seconds, up to 180 times, until it answers 200 OK.

If no config file is specified, podctl.yaml in the current directory is
used when present; otherwise the built-in defaults apply.

Examples:
  # Deploy with defaults
  export RUNPOD_API_KEY=<your-api-key>
  podctl deploy

  # Deploy with a config file and don't wait
  podctl deploy -c large-model.yaml --no-wait`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), opts)
		},
	}

	bindDeployFlags(cmd.Flags(), &opts)

	return cmd
}

// bindDeployFlags registers the deploy flags on fs. The debug command reuses
// it to parse arguments the way deploy would.
func bindDeployFlags(fs *pflag.FlagSet, opts *handlers.DeployOptions) {
	fs.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: podctl.yaml)")
	fs.StringVar(&opts.RecordPath, "record", "", "Deployment record path (default: from config)")
	fs.BoolVar(&opts.NoWait, "no-wait", false, "Do not wait for the pod to become ready")
	fs.BoolVar(&opts.ProbeStream, "probe-stream", false, "Open the WebSocket endpoint after the pod is ready")
	fs.StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file")
}
