package ports

// The metrics ports let services record domain events without knowing
// the metrics backend. The API layer provides the Prometheus-backed
// implementation.

// AuthMetrics records authentication outcomes.
type AuthMetrics interface {
	AccountCreated()
	LoginAttempt(success bool)
}

// BookingMetrics records reservation outcomes and lock contention.
type BookingMetrics interface {
	BookingCreated()
	BookingConflict()
	LockWait(seconds float64)
}

// MediaMetrics records gallery activity.
type MediaMetrics interface {
	ImageUploaded()
}
