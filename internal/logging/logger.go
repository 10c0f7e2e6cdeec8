// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Config holds logging configuration options.
type Config struct {
	Level        string    // Logging level (trace, debug, info, warning, error, fatal, panic)
	Format       string    // Logging format ("text" or "json")
	ReportCaller bool      // Whether to include the calling method/file in the logs
	Output       io.Writer // Destination, defaults to stderr
}

// Configure sets up the standard logrus logger according to c.
func Configure(c Config) error {
	parsedLevel, err := log.ParseLevel(c.Level)
	if err != nil {
		return err
	}

	switch c.Format {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format '%s'", c.Format)
	}

	log.SetLevel(parsedLevel)
	log.SetReportCaller(c.ReportCaller)

	// Console narration owns stdout.
	out := c.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	return nil
}
