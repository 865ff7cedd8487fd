// Package metrics holds the prometheus collectors of the shortener client
// and the development backend.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeRemote  = "remote_error"
)

// Copy methods
const (
	CopyClipboard = "clipboard"
	CopyFallback  = "fallback"
	CopyFailed    = "failed"
)

// QR outcomes
const (
	QRRendered = "rendered"
	QRFailed   = "failed"
)

// Metrics groups the collectors on a private registry. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry           *prometheus.Registry
	submissions        *prometheus.CounterVec
	submissionDuration prometheus.Histogram
	copies             *prometheus.CounterVec
	qrRenders          *prometheus.CounterVec
	stubRequests       *prometheus.CounterVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shortener",
			Name:      "submissions_total",
			Help:      "Shorten submissions by outcome.",
		}, []string{"outcome"}),
		submissionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shortener",
			Name:      "submission_duration_seconds",
			Help:      "Time from submit to the endpoint response settling.",
			Buckets:   prometheus.DefBuckets,
		}),
		copies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shortener",
			Name:      "copies_total",
			Help:      "Copy requests by the clipboard mechanism that served them.",
		}, []string{"method"}),
		qrRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shortener",
			Name:      "qr_renders_total",
			Help:      "QR encodings by outcome.",
		}, []string{"outcome"}),
		stubRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shortener_stub",
			Name:      "http_requests_total",
			Help:      "Requests served by the development backend.",
		}, []string{"route", "code"}),
	}

	m.registry.MustRegister(m.submissions, m.submissionDuration, m.copies, m.qrRenders, m.stubRequests)
	return m
}

// Registry returns the registry holding the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SubmissionFinished records a settled submission. Validation failures never
// reach the network and are recorded without a duration.
func (m *Metrics) SubmissionFinished(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
	if outcome != OutcomeInvalid {
		m.submissionDuration.Observe(elapsed.Seconds())
	}
}

// CopyPerformed records a copy request served by method
func (m *Metrics) CopyPerformed(method string) {
	if m == nil {
		return
	}
	m.copies.WithLabelValues(method).Inc()
}

// QRFinished records the outcome of a QR encoding
func (m *Metrics) QRFinished(outcome string) {
	if m == nil {
		return
	}
	m.qrRenders.WithLabelValues(outcome).Inc()
}

// StubRequest records a request served by the development backend
func (m *Metrics) StubRequest(route string, code string) {
	if m == nil {
		return
	}
	m.stubRequests.WithLabelValues(route, code).Inc()
}

// WriteTextfile writes the current values in the node-exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
