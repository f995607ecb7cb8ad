// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Auth metrics
	IncUserRegistered()
	IncLoginSuccess()
	IncLoginFailure()

	// Course metrics
	IncCourseCacheHit()
	IncCourseCacheMiss()
	IncCourseCreated()
	IncCourseUpdated()
	IncCourseDeleted()

	// Contact metrics
	IncContactMessageReceived()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
