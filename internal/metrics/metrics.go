package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "film_catalog"

	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 30},
		},
		[]string{"method", "route"},
	)

	BlobOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blob",
			Name:      "operations_total",
			Help:      "Total blob store operations",
		},
		[]string{"operation", "status"},
	)

	BlobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "blob",
			Name:      "duration_seconds",
			Help:      "Blob store operation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 15, 60},
		},
		[]string{"operation"},
	)

	UploadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blob",
			Name:      "upload_bytes_total",
			Help:      "Total bytes stored",
		},
		[]string{"kind"},
	)

	// OrphanedBlobsTotal counts blobs that could not be removed and were
	// left in the store.
	OrphanedBlobsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blob",
			Name:      "orphaned_total",
			Help:      "Blobs left behind after a failed best-effort removal",
		},
	)
)

func RecordRequest(method, route, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(durationSec)
}

func RecordBlobOperation(operation, status string, durationSec float64) {
	BlobOperationsTotal.WithLabelValues(operation, status).Inc()
	BlobDuration.WithLabelValues(operation).Observe(durationSec)
}

func RecordUpload(kind string, bytes int64) {
	UploadBytesTotal.WithLabelValues(kind).Add(float64(bytes))
}

func RecordOrphans(count int) {
	OrphanedBlobsTotal.Add(float64(count))
}
