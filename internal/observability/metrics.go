// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tokenomics-lab/internal/domain"
)

// Simulation outcomes.
const (
	OutcomeScheduled  = "scheduled"
	OutcomeDegenerate = "degenerate"
	OutcomeCeiling    = "ceiling"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Simulation metrics
	SimulationsTotal   *prometheus.CounterVec
	SimulationDuration prometheus.Histogram
	ScheduleEpochs     prometheus.Histogram
	CeilingHits        prometheus.Counter

	// Preview memo metrics
	PreviewRequests *prometheus.CounterVec
	StoredPreviews  prometheus.Gauge

	// Verification metrics
	VerificationsTotal *prometheus.CounterVec
	ParityDivergences  prometheus.Counter

	// Health metrics
	LastSuccessfulPreview prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered on reg.
// A nil reg creates unregistered metrics.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "tokenomics_lab"
	}
	factory := promauto.With(reg)

	return &Metrics{
		// Simulation metrics
		SimulationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Total number of schedule simulations by outcome",
		}, []string{"outcome"}),
		SimulationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "duration_seconds",
			Help:      "Time to simulate and derive one schedule",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		ScheduleEpochs: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "epochs",
			Help:      "Number of minting epochs per schedule",
			Buckets:   prometheus.LinearBuckets(0, 5, int(domain.MaxEpochs/5+1)),
		}),
		CeilingHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulation",
			Name:      "epoch_ceiling_hits_total",
			Help:      "Schedules cut off by the epoch ceiling with capacity left",
		}),

		// Preview memo metrics
		PreviewRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "preview",
			Name:      "requests_total",
			Help:      "Total number of preview requests by memo result",
		}, []string{"result"}),
		StoredPreviews: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "preview",
			Name:      "stored",
			Help:      "Current number of memoized previews",
		}),

		// Verification metrics
		VerificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verification",
			Name:      "runs_total",
			Help:      "Total number of ledger parity checks by result",
		}, []string{"result"}),
		ParityDivergences: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verification",
			Name:      "divergences_total",
			Help:      "Total number of field divergences found against the ledger",
		}),

		// Health metrics
		LastSuccessfulPreview: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_preview_timestamp",
			Help:      "Unix timestamp of last successful preview",
		}),
	}
}

// DefaultMetrics is the default metrics instance, registered on the default registry.
var DefaultMetrics = NewMetrics("", prometheus.DefaultRegisterer)

// Outcome classifies a schedule for the runs_total counter.
func Outcome(r *domain.ScheduleResult) string {
	switch {
	case r.Degenerate:
		return OutcomeDegenerate
	case r.CeilingReached:
		return OutcomeCeiling
	default:
		return OutcomeScheduled
	}
}

// RecordSimulation records one simulation and its duration.
func (m *Metrics) RecordSimulation(r *domain.ScheduleResult, durationSeconds float64) {
	m.SimulationsTotal.WithLabelValues(Outcome(r)).Inc()
	m.SimulationDuration.Observe(durationSeconds)
	m.ScheduleEpochs.Observe(float64(len(r.Epochs)))
	if r.CeilingReached {
		m.CeilingHits.Inc()
	}
}

// RecordPreview records a memo hit or miss and the current store size.
func (m *Metrics) RecordPreview(hit bool, stored int) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.PreviewRequests.WithLabelValues(result).Inc()
	m.StoredPreviews.Set(float64(stored))
	m.LastSuccessfulPreview.Set(float64(time.Now().Unix()))
}

// RecordVerification records a ledger parity check.
func (m *Metrics) RecordVerification(match bool, divergences int) {
	result := "divergent"
	if match {
		result = "match"
	}
	m.VerificationsTotal.WithLabelValues(result).Inc()
	m.ParityDivergences.Add(float64(divergences))
}

// WriteTextfile writes all metrics gathered from g to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
