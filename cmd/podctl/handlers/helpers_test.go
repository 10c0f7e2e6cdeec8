package handlers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imamik/podctl/internal/config"
)

// captureOutput captures stdout output from a function.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = old
	return <-outC
}

// stubConfig makes loadConfig return the built-in defaults with the record
// written to a temporary directory, adjusted by mutate.
func stubConfig(t *testing.T, mutate func(*config.Config)) *config.Config {
	t.Helper()

	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.RecordPath = filepath.Join(t.TempDir(), "record.json")
	cfg.Readiness.Interval = 0
	if mutate != nil {
		mutate(cfg)
	}

	orig := loadConfig
	t.Cleanup(func() { loadConfig = orig })
	loadConfig = func(string) (*config.Config, error) {
		return cfg, nil
	}
	return cfg
}
