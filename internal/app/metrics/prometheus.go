package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the dashboard service
type Metrics struct {
	// Recording pipeline metrics
	RecordingsStarted   prometheus.Counter
	RecordingsCompleted prometheus.Counter
	RecordingsFailed    prometheus.Counter
	CaptureDuration     prometheus.Histogram

	// Storage metrics
	Uploads       prometheus.Counter
	UploadErrors  prometheus.Counter
	StorageErrors *prometheus.CounterVec

	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordingsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "audioboard_recordings_started_total",
			Help: "Total number of recordings started",
		}),
		RecordingsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "audioboard_recordings_completed_total",
			Help: "Total number of recordings captured, serialized and uploaded",
		}),
		RecordingsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "audioboard_recordings_failed_total",
			Help: "Total number of recordings that failed at any pipeline stage",
		}),
		CaptureDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "audioboard_capture_duration_seconds",
			Help:    "Requested capture durations",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
		}),
		Uploads: factory.NewCounter(prometheus.CounterOpts{
			Name: "audioboard_uploads_total",
			Help: "Total number of successful uploads to object storage",
		}),
		UploadErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "audioboard_upload_errors_total",
			Help: "Total number of failed uploads to object storage",
		}),
		StorageErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audioboard_storage_errors_total",
			Help: "Storage gateway errors by error kind",
		}, []string{"kind"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audioboard_http_requests_total",
			Help: "HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "audioboard_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Default returns the process-wide metrics registered against the
// default registry. Safe to call from multiple goroutines.
var Default = sync.OnceValue(func() *Metrics {
	return New(prometheus.DefaultRegisterer)
})
