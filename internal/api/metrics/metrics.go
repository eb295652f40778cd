// Package metrics defines all custom Prometheus metrics for the console
// agent. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "revelop"

// BackendRequestsTotal counts calls made to the salon backend.
// Labels:
//   - endpoint: the logical path called (e.g. "/admin/bookings")
//   - status: the HTTP status code, or "network" when the call never
//     completed
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests sent to the salon backend.",
	},
	[]string{"endpoint", "status"},
)

// SessionEvictionsTotal counts sessions force-cleared because the backend
// rejected the bearer token mid-session.
var SessionEvictionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_evictions_total",
		Help:      "Total number of sessions cleared after a 401 from the backend.",
	},
)

// BookingsCreatedTotal counts bookings successfully created through the
// console.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created via the console.",
	},
)

// DashboardLoadDuration measures the joined services/employees/bookings
// fetch end-to-end.
var DashboardLoadDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_load_duration_seconds",
		Help:      "Duration of the joined dashboard fetch.",
		Buckets:   prometheus.DefBuckets,
	},
)
