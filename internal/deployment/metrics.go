package deployment

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Deployment results used as the "result" label.
const (
	ResultCreated     = "created"
	ResultFailed      = "failed"
	ResultConfigError = "config_error"
)

// Metrics collects run metrics on a private registry so they can be dumped
// to a node_exporter textfile at the end of a run.
type Metrics struct {
	registry *prometheus.Registry

	deploymentsTotal  *prometheus.CounterVec
	readinessAttempts prometheus.Counter
	readinessReady    prometheus.Gauge
	readinessWait     prometheus.Gauge
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		deploymentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "podctl",
				Name:      "deployments_total",
				Help:      "Total number of pod deployments by result",
			},
			[]string{"result"},
		),
		readinessAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "podctl",
			Subsystem: "readiness",
			Name:      "attempts_total",
			Help:      "Total number of readiness probes sent",
		}),
		readinessReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "podctl",
			Subsystem: "readiness",
			Name:      "ready",
			Help:      "Whether the pod answered the readiness probe (1) or not (0)",
		}),
		readinessWait: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "podctl",
			Subsystem: "readiness",
			Name:      "wait_seconds",
			Help:      "Time spent waiting for the pod to become ready",
		}),
	}

	m.registry.MustRegister(
		m.deploymentsTotal,
		m.readinessAttempts,
		m.readinessReady,
		m.readinessWait,
	)
	return m
}

// The record methods accept a nil receiver so callers without metrics can
// pass nil.

func (m *Metrics) recordDeployment(result string) {
	if m != nil {
		m.deploymentsTotal.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) recordAttempt() {
	if m != nil {
		m.readinessAttempts.Inc()
	}
}

func (m *Metrics) recordReadiness(ready bool, waitSeconds float64) {
	if m == nil {
		return
	}
	if ready {
		m.readinessReady.Set(1)
	} else {
		m.readinessReady.Set(0)
	}
	m.readinessWait.Set(waitSeconds)
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
