package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce              sync.Once
	httpRequestsTotal         *prometheus.CounterVec
	httpLatencySeconds        *prometheus.HistogramVec
	httpErrorsTotal           *prometheus.CounterVec
	notificationsSentTotal    *prometheus.CounterVec
	notificationsFailedTotal  *prometheus.CounterVec
	attendanceRecordedTotal   prometheus.Counter
	dashboardCacheHitsTotal   prometheus.Counter
	dashboardCacheMissesTotal prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "college_http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "college_http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "college_http_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		notificationsSentTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "college_notifications_sent_total",
			Help: "Total number of notification messages dispatched to the provider.",
		}, []string{"channel", "audience"})

		notificationsFailedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "college_notifications_failed_total",
			Help: "Total number of notification dispatches rejected by the provider.",
		}, []string{"channel", "audience"})

		attendanceRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "college_attendance_events_total",
			Help: "Total number of attendance events recorded.",
		})

		dashboardCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "college_dashboard_cache_hits_total",
			Help: "Total number of dashboard reads served from cache.",
		})

		dashboardCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "college_dashboard_cache_misses_total",
			Help: "Total number of dashboard reads computed from the database.",
		})

		prometheus.MustRegister(
			httpRequestsTotal,
			httpLatencySeconds,
			httpErrorsTotal,
			notificationsSentTotal,
			notificationsFailedTotal,
			attendanceRecordedTotal,
			dashboardCacheHitsTotal,
			dashboardCacheMissesTotal,
		)
	})
}

// HTTPRequests exposes the counter for served requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for served requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// HTTPErrors exposes the counter for error responses.
func HTTPErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// NotificationsSent exposes the counter for dispatched notifications.
func NotificationsSent() *prometheus.CounterVec {
	RegisterMetrics()
	return notificationsSentTotal
}

// NotificationsFailed exposes the counter for failed dispatches.
func NotificationsFailed() *prometheus.CounterVec {
	RegisterMetrics()
	return notificationsFailedTotal
}

// AttendanceRecorded exposes the counter for attendance events.
func AttendanceRecorded() prometheus.Counter {
	RegisterMetrics()
	return attendanceRecordedTotal
}

// DashboardCacheHits exposes the counter for cache hits.
func DashboardCacheHits() prometheus.Counter {
	RegisterMetrics()
	return dashboardCacheHitsTotal
}

// DashboardCacheMisses exposes the counter for cache misses.
func DashboardCacheMisses() prometheus.Counter {
	RegisterMetrics()
	return dashboardCacheMissesTotal
}
