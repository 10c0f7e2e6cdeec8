// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework. They narrate progress to stdout; logrus
// diagnostics go to stderr.
package handlers

import (
	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/logging"
)

// Setup configures logging and loads envFile, if given, into the process
// environment. Variables already set take precedence over the file.
func Setup(logLevel, logFormat, envFile string) error {
	if err := logging.Configure(logging.Config{
		Level:  logLevel,
		Format: logFormat,
	}); err != nil {
		return err
	}

	if envFile != "" {
		return config.LoadEnvFile(envFile)
	}
	return nil
}
