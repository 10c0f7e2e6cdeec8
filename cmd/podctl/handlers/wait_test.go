package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/deployment"
)

// podServer answers 503 for the first failures requests and 200 afterwards.
func podServer(t *testing.T, failures int64) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

// saveRecord writes a record pointing at url to cfg.RecordPath.
func saveRecord(t *testing.T, cfg *config.Config, url string) *deployment.Record {
	t.Helper()
	rec := &deployment.Record{
		PodID:        "abc123",
		CreatedAt:    time.Now().Format(time.RFC3339),
		DockerImage:  cfg.Image,
		AccessURL:    url,
		WebSocketURL: "wss://abc123-8000.proxy.runpod.net/asr",
		Model:        cfg.Model,
	}
	require.NoError(t, rec.Save(cfg.RecordPath))
	return rec
}

func TestWait_NoRecord(t *testing.T) {
	cfg := stubConfig(t, nil)

	var err error
	output := captureOutput(func() {
		err = Wait(context.Background(), WaitOptions{})
	})

	require.ErrorIs(t, err, deployment.ErrNoRecord)
	assert.Contains(t, output, "No deployment record available at "+cfg.RecordPath)
}

func TestWait_ReadyAfterFailures(t *testing.T) {
	cfg := stubConfig(t, func(c *config.Config) { c.Readiness.MaxAttempts = 5 })
	server, hits := podServer(t, 2)
	saveRecord(t, cfg, server.URL+"/")

	var err error
	output := captureOutput(func() {
		err = Wait(context.Background(), WaitOptions{})
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), hits.Load())
	assert.Contains(t, output, "Attempt 1/5: not ready (status 503 Service Unavailable)")
	assert.Contains(t, output, "Attempt 3/5: ready")
	assert.NotContains(t, output, "Attempt 4/5")
	assert.Contains(t, output, "Pod abc123 is ready")
}

func TestWait_NotReady(t *testing.T) {
	cfg := stubConfig(t, func(c *config.Config) { c.Readiness.MaxAttempts = 3 })
	server, hits := podServer(t, 100)
	saveRecord(t, cfg, server.URL+"/")

	var err error
	output := captureOutput(func() {
		err = Wait(context.Background(), WaitOptions{})
	})

	require.ErrorIs(t, err, deployment.ErrNotReady)
	assert.Equal(t, int64(3), hits.Load())
	assert.Contains(t, output, "Attempt 3/3")
	assert.Contains(t, output, "Pod abc123 did not become ready")
}

func TestWait_ProbeStream(t *testing.T) {
	cfg := stubConfig(t, nil)
	server, _ := podServer(t, 0)
	saveRecord(t, cfg, server.URL+"/")

	orig := probeStream
	t.Cleanup(func() { probeStream = orig })

	t.Run("accepted", func(t *testing.T) {
		var dialed string
		probeStream = func(_ context.Context, url string, _ time.Duration) error {
			dialed = url
			return nil
		}

		output := captureOutput(func() {
			require.NoError(t, Wait(context.Background(), WaitOptions{ProbeStream: true}))
		})
		assert.Equal(t, "wss://abc123-8000.proxy.runpod.net/asr", dialed)
		assert.Contains(t, output, "Stream endpoint accepts connections")
	})

	t.Run("rejected", func(t *testing.T) {
		probeStream = func(context.Context, string, time.Duration) error {
			return errors.New("bad handshake")
		}

		var err error
		captureOutput(func() {
			err = Wait(context.Background(), WaitOptions{ProbeStream: true})
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stream probe failed")
	})
}

func TestPrintAttempt(t *testing.T) {
	output := captureOutput(func() {
		printAttempt(deployment.Attempt{Number: 2, MaxAttempts: 180, Err: errors.New("connection refused")})
	})
	assert.Equal(t, "   Attempt 2/180: not reachable (connection refused)\n", output)
}
