package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/deployment"
)

var (
	// loadRecord reads a saved deployment record.
	loadRecord = deployment.LoadRecord

	// newReadinessChecker creates the readiness poller.
	newReadinessChecker = deployment.NewReadinessChecker

	// probeStream dials the advertised WebSocket endpoint.
	probeStream = deployment.ProbeStream
)

// WaitOptions holds the wait command flags.
type WaitOptions struct {
	ConfigPath  string
	RecordPath  string
	ProbeStream bool
}

// Wait polls the pod in a saved record until it answers 200 OK.
func Wait(ctx context.Context, opts WaitOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	path := opts.RecordPath
	if path == "" {
		path = cfg.RecordPath
	}

	rec, err := loadRecord(path)
	if err != nil {
		if errors.Is(err, deployment.ErrNoRecord) {
			printFailure("No deployment record available at %s", path)
			fmt.Println("   Run 'podctl deploy' first.")
		}
		return err
	}

	return waitForPod(ctx, cfg, rec, opts.ProbeStream, nil)
}

// waitForPod runs the readiness loop for rec and narrates each attempt.
func waitForPod(ctx context.Context, cfg *config.Config, rec *deployment.Record, probe bool, metrics *deployment.Metrics) error {
	checker := newReadinessChecker(cfg.Readiness)
	defer checker.Close()
	checker.Metrics = metrics
	checker.OnAttempt = printAttempt

	fmt.Println()
	printTitle("⏳ Waiting for the pod to become ready")
	fmt.Printf("   Polling %s every %s, up to %d attempts (max %s)\n",
		rec.AccessURL, cfg.Readiness.Interval, cfg.Readiness.MaxAttempts, waitTimeout(cfg.Readiness))

	if err := checker.Wait(ctx, rec); err != nil {
		switch {
		case errors.Is(err, deployment.ErrNoRecord):
			printFailure("No deployment record available")
		case errors.Is(err, deployment.ErrNotReady):
			printFailure("Pod %s did not become ready", rec.PodID)
			fmt.Println("   The pod is still running. Check its logs in the RunPod console.")
		default:
			printFailure("Stopped waiting: %v", err)
		}
		return err
	}

	fmt.Println()
	printSuccess("Pod %s is ready", rec.PodID)
	printField("HTTP", rec.AccessURL)
	printField("WebSocket", rec.WebSocketURL)

	if probe {
		if err := probeStream(ctx, rec.WebSocketURL, cfg.Readiness.RequestTimeout); err != nil {
			printFailure("Stream endpoint rejected the connection: %v", err)
			return fmt.Errorf("stream probe failed: %w", err)
		}
		printSuccess("Stream endpoint accepts connections")
	}

	return nil
}

// printAttempt prints one progress line per readiness probe.
func printAttempt(a deployment.Attempt) {
	prefix := fmt.Sprintf("   Attempt %d/%d:", a.Number, a.MaxAttempts)
	switch {
	case a.Ready():
		fmt.Printf("%s %s\n", prefix, render(successStyle, "ready"))
	case a.StatusCode != 0:
		fmt.Printf("%s %s\n", prefix, render(dimStyle, fmt.Sprintf("not ready (status %d %s)", a.StatusCode, http.StatusText(a.StatusCode))))
	default:
		fmt.Printf("%s %s\n", prefix, render(dimStyle, fmt.Sprintf("not reachable (%v)", a.Err)))
	}
}
