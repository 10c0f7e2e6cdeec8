// Package main is the entry point for the podctl CLI.
//
// podctl deploys the WhisperLiveKit speech-to-text service to a RunPod GPU
// pod, records how to reach it and waits until it answers HTTP requests.
//
// Commands: deploy, wait, debug, init, version, completion.
//
// For detailed usage information, run:
//
//	podctl --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/podctl/cmd/podctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
