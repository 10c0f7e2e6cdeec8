package deployment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"

	"github.com/imamik/podctl/internal/config"
	"github.com/imamik/podctl/internal/util/retry"
)

var (
	// ErrNoRecord is returned when there is no deployment to wait for.
	ErrNoRecord = errors.New("no deployment record available")

	// ErrNotReady is returned when the pod never answered 200 OK.
	ErrNotReady = errors.New("pod did not become ready")

	// ErrInvalidAccessURL is returned when the record's access URL can
	// never be probed. It ends the wait after the first attempt.
	ErrInvalidAccessURL = errors.New("invalid access URL")
)

// Attempt describes one readiness probe.
type Attempt struct {
	Number      int
	MaxAttempts int

	// StatusCode is zero when no response was received.
	StatusCode int
	Err        error
}

// Ready reports whether the probe succeeded.
func (a Attempt) Ready() bool {
	return a.Err == nil
}

// StatusError is returned by a probe that received a non-200 response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ReadinessChecker polls a pod's access URL until it answers 200 OK.
type ReadinessChecker struct {
	client      *resty.Client
	maxAttempts int
	interval    time.Duration

	// OnAttempt is called after every probe, successful or not.
	OnAttempt func(Attempt)
	Metrics   *Metrics

	sleep func(ctx context.Context, d time.Duration) error
}

// NewReadinessChecker creates a checker using the attempt budget, interval
// and per-request timeout in cfg.
func NewReadinessChecker(cfg config.ReadinessConfig) *ReadinessChecker {
	return &ReadinessChecker{
		client:      resty.New().SetTimeout(cfg.RequestTimeout),
		maxAttempts: cfg.MaxAttempts,
		interval:    cfg.Interval,
	}
}

// Close releases idle connections.
func (c *ReadinessChecker) Close() error {
	return c.client.Close()
}

// Wait probes rec.AccessURL until it returns 200 OK. Every error or non-200
// status consumes one attempt; there is no distinction between transient and
// permanent failures. It returns ErrNoRecord without probing when rec is nil,
// an error wrapping ErrInvalidAccessURL when the URL is not an http(s) URL
// and an error wrapping ErrNotReady when all attempts fail.
func (c *ReadinessChecker) Wait(ctx context.Context, rec *Record) error {
	if rec == nil || rec.AccessURL == "" {
		return ErrNoRecord
	}

	logger := log.WithFields(log.Fields{
		"pod-id": rec.PodID,
		"url":    rec.AccessURL,
	})

	opts := []retry.Option{
		retry.WithMaxAttempts(c.maxAttempts),
		retry.WithInterval(c.interval),
		retry.WithOnAttempt(func(attempt, maxAttempts int, err error) {
			c.Metrics.recordAttempt()
			a := Attempt{Number: attempt, MaxAttempts: maxAttempts, Err: err}
			var statusErr *StatusError
			switch {
			case err == nil:
				a.StatusCode = http.StatusOK
			case errors.As(err, &statusErr):
				a.StatusCode = statusErr.StatusCode
			}
			if err != nil {
				logger.WithField("attempt", attempt).WithError(err).Debug("pod not ready")
			}
			if c.OnAttempt != nil {
				c.OnAttempt(a)
			}
		}),
	}
	if c.sleep != nil {
		opts = append(opts, retry.WithSleep(c.sleep))
	}

	start := time.Now()
	err := retry.Poll(ctx, func(ctx context.Context) error {
		return c.probe(ctx, rec.AccessURL)
	}, opts...)
	c.Metrics.recordReadiness(err == nil, time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, retry.ErrExhausted) {
			return fmt.Errorf("%w: %s did not answer 200 OK after %d attempts", ErrNotReady, rec.AccessURL, c.maxAttempts)
		}
		return err
	}

	logger.Info("pod is ready")
	return nil
}

func (c *ReadinessChecker) probe(ctx context.Context, target string) error {
	if err := checkAccessURL(target); err != nil {
		return retry.Fatal(err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode()}
	}
	return nil
}

// checkAccessURL rejects URLs no amount of waiting will make reachable.
func checkAccessURL(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidAccessURL, target, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w %q: unsupported scheme %q", ErrInvalidAccessURL, target, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w %q: missing host", ErrInvalidAccessURL, target)
	}
	return nil
}
