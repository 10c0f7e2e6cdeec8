package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "podctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "whisper-stt", cfg.NamePrefix)
	assert.Equal(t, DefaultImage, cfg.Image)
	assert.Equal(t, "NVIDIA GeForce RTX 5090", cfg.GPUType)
	assert.Equal(t, 1, cfg.GPUCount)
	assert.Equal(t, "ALL", cfg.CloudType)
	assert.Equal(t, 20, cfg.ContainerDiskGB)
	assert.Equal(t, "/runpod-volume", cfg.VolumeMountPath)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "http", cfg.Protocol)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, "proxy.runpod.net", cfg.ProxyDomain)
	assert.Equal(t, "/asr", cfg.StreamPath)
	assert.Equal(t, DefaultRecordPath, cfg.RecordPath)
	assert.Equal(t, DefaultAPIURL, cfg.API.URL)
	assert.Equal(t, 90*time.Second, cfg.API.Timeout)
	assert.Equal(t, 180, cfg.Readiness.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.Readiness.Interval)
	assert.Equal(t, 10*time.Second, cfg.Readiness.RequestTimeout)
	assert.False(t, cfg.Archive.Enabled())

	assert.Equal(t, map[string]string{
		"PYTHONUNBUFFERED": "1",
		"HF_HOME":          "/runpod-volume/.cache/huggingface",
	}, cfg.Env)
	assert.Equal(t, []string{
		"whisperlivekit-server",
		"--host", "0.0.0.0",
		"--port", "8000",
		"--model", "base.en",
		"--language", "auto",
	}, cfg.Command)

	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
image: ghcr.io/example/stt:v2
gpu_type: NVIDIA RTX A6000
model: small
readiness:
  interval: 5s
`)

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, "ghcr.io/example/stt:v2", cfg.Image)
		assert.Equal(t, "NVIDIA RTX A6000", cfg.GPUType)
		assert.Equal(t, "small", cfg.Model)
		assert.Equal(t, 5*time.Second, cfg.Readiness.Interval)
		assert.Equal(t, 180, cfg.Readiness.MaxAttempts)
		assert.Equal(t, 20, cfg.ContainerDiskGB)
		assert.Contains(t, cfg.Command, "small", "default command should start the configured model")
	})

	t.Run("explicit env and command", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
env:
  LOG_LEVEL: debug
command: ["serve", "--fast"]
`)

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"LOG_LEVEL": "debug"}, cfg.Env)
		assert.Equal(t, []string{"serve", "--fast"}, cfg.Command)
	})

	t.Run("custom port reaches default command", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "port: 9000\n")

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		assert.Equal(t, 9000, cfg.Port)
		assert.Subset(t, cfg.Command, []string{"--port", "9000"})
		assert.NotContains(t, cfg.Command, "8000")
		idx := slices.Index(cfg.Command, "--port")
		require.GreaterOrEqual(t, idx, 0)
		assert.Equal(t, "9000", cfg.Command[idx+1])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "image: [unterminated")
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal yaml")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), `
protocol: udp
volume_mount_path: runpod-volume
`)
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration validation failed")
		assert.Contains(t, err.Error(), "protocol must be one of")
		assert.Contains(t, err.Error(), "volume_mount_path must start with")
	})
}

func TestLoad(t *testing.T) {
	t.Run("no file uses defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultImage, cfg.Image)
	})

	t.Run("picks up default file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "model: medium\n")
		t.Chdir(dir)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "medium", cfg.Model)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
