package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemoteCallsTotal counts remote API calls.
	// Labels: service (transcription/summarization/chat), status (success/error)
	RemoteCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auditvox_remote_calls_total",
			Help: "Total number of remote service calls by service and status",
		},
		[]string{"service", "status"},
	)

	// RemoteCallDuration observes remote call latency in seconds.
	// Buckets cover sub-second chat turns up to multi-minute transcriptions.
	RemoteCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auditvox_remote_call_duration_seconds",
			Help:    "Remote service call duration in seconds by service",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		},
		[]string{"service"},
	)

	// SegmentsTranscribedTotal counts live recording segments pushed through
	// the per-segment transcription path.
	SegmentsTranscribedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auditvox_segments_transcribed_total",
			Help: "Total number of live recording segments transcribed by status",
		},
		[]string{"status"},
	)

	// RecordingActive is 1 while a recording session is active.
	RecordingActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "auditvox_recording_active",
			Help: "Recording session state (0=idle, 1=recording)",
		},
	)

	// ReportsGeneratedTotal counts generated PDF reports by language.
	ReportsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auditvox_reports_generated_total",
			Help: "Total number of generated audit reports by language and status",
		},
		[]string{"language", "status"},
	)
)

// RecordRemoteCall records one remote call outcome with its duration.
func RecordRemoteCall(service string, success bool, durationSeconds float64) {
	status := "success"
	if !success {
		status = "error"
	}
	RemoteCallsTotal.WithLabelValues(service, status).Inc()
	RemoteCallDuration.WithLabelValues(service).Observe(durationSeconds)
}

// RecordSegment records one per-segment transcription outcome.
func RecordSegment(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	SegmentsTranscribedTotal.WithLabelValues(status).Inc()
}

// SetRecordingActive flips the session gauge.
func SetRecordingActive(active bool) {
	if active {
		RecordingActive.Set(1)
	} else {
		RecordingActive.Set(0)
	}
}

// RecordReport records one report generation outcome.
func RecordReport(language string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	ReportsGeneratedTotal.WithLabelValues(language, status).Inc()
}
