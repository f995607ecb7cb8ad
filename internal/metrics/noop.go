package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure() {}

// IncCourseCacheHit is a no-op.
func (n *NoopRecorder) IncCourseCacheHit() {}

// IncCourseCacheMiss is a no-op.
func (n *NoopRecorder) IncCourseCacheMiss() {}

// IncCourseCreated is a no-op.
func (n *NoopRecorder) IncCourseCreated() {}

// IncCourseUpdated is a no-op.
func (n *NoopRecorder) IncCourseUpdated() {}

// IncCourseDeleted is a no-op.
func (n *NoopRecorder) IncCourseDeleted() {}

// IncContactMessageReceived is a no-op.
func (n *NoopRecorder) IncContactMessageReceived() {}
