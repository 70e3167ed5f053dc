// Package metrics defines all custom Prometheus metrics for the pousada
// API. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry
// at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pousada"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created through /signup.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts accepted reservations.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings accepted.",
	},
)

// BookingConflictsTotal counts create attempts rejected by the
// overlapping-dates check.
var BookingConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of bookings rejected for overlapping an existing stay.",
	},
)

// BookingLockWaitSeconds measures how long a create request waited for
// the creation advisory lock.
var BookingLockWaitSeconds = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "booking_lock_wait_seconds",
		Help:      "Time spent waiting to acquire the booking creation lock.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Media metrics ─────────────────────────────────────────────────────────────

// ImageUploadsTotal counts gallery images stored.
var ImageUploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of gallery images uploaded.",
	},
)

// Recorder is the Prometheus-backed implementation of the core metrics
// ports (ports.AuthMetrics, ports.BookingMetrics, ports.MediaMetrics).
type Recorder struct{}

func (Recorder) AccountCreated() {
	SignupsTotal.Inc()
}

func (Recorder) LoginAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	LoginsTotal.WithLabelValues(result).Inc()
}

func (Recorder) BookingCreated() {
	BookingsCreatedTotal.Inc()
}

func (Recorder) BookingConflict() {
	BookingConflictsTotal.Inc()
}

func (Recorder) LockWait(seconds float64) {
	BookingLockWaitSeconds.Observe(seconds)
}

func (Recorder) ImageUploaded() {
	ImageUploadsTotal.Inc()
}
