package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the document pipeline.
type Metrics struct {
	DocumentsUploaded prometheus.Counter

	// Pipeline outcomes: "processed" or "failed"
	PipelineRuns *prometheus.CounterVec

	// Per-phase latency: extract, recognize, commit, verify
	PhaseLatency *prometheus.HistogramVec

	PipelineLatency prometheus.Histogram

	EntitiesRecognized prometheus.Counter

	// Verification results by verified flag
	Verifications *prometheus.CounterVec

	PendingItems prometheus.Gauge
}

// New registers the pipeline metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		DocumentsUploaded: f.NewCounter(prometheus.CounterOpts{
			Name: "kyc_documents_uploaded_total",
			Help: "Total number of documents accepted for processing",
		}),
		PipelineRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kyc_pipeline_runs_total",
			Help: "Total pipeline runs by outcome",
		}, []string{"outcome"}),
		PhaseLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kyc_pipeline_phase_duration_seconds",
			Help:    "Duration of each pipeline phase",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"phase"}),
		PipelineLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "kyc_pipeline_duration_seconds",
			Help:    "Duration of a full pipeline run",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		EntitiesRecognized: f.NewCounter(prometheus.CounterOpts{
			Name: "kyc_entities_recognized_total",
			Help: "Total entities returned by the recognizer",
		}),
		Verifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kyc_verifications_total",
			Help: "Checklist verifications by result",
		}, []string{"verified"}),
		PendingItems: f.NewGauge(prometheus.GaugeOpts{
			Name: "kyc_checklist_pending_items",
			Help: "Required checklist items still pending after the last change",
		}),
	}
}

func (m *Metrics) IncrementUploaded() {
	if m != nil {
		m.DocumentsUploaded.Inc()
	}
}

func (m *Metrics) IncrementRun(outcome string) {
	if m != nil {
		m.PipelineRuns.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObservePhase(phase string, d time.Duration) {
	if m != nil {
		m.PhaseLatency.WithLabelValues(phase).Observe(d.Seconds())
	}
}

func (m *Metrics) ObservePipeline(d time.Duration) {
	if m != nil {
		m.PipelineLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) AddEntities(n int) {
	if m != nil {
		m.EntitiesRecognized.Add(float64(n))
	}
}

func (m *Metrics) IncrementVerification(verified bool) {
	if m != nil {
		m.Verifications.WithLabelValues(strconv.FormatBool(verified)).Inc()
	}
}

func (m *Metrics) SetPending(n int) {
	if m != nil {
		m.PendingItems.Set(float64(n))
	}
}
