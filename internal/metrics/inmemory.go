package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered         uint64
	LoginSuccesses          uint64
	LoginFailures           uint64
	CourseCacheHits         uint64
	CourseCacheMisses       uint64
	CoursesCreated          uint64
	CoursesUpdated          uint64
	CoursesDeleted          uint64
	ContactMessagesReceived uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersRegistered         uint64
	loginSuccesses          uint64
	loginFailures           uint64
	courseCacheHits         uint64
	courseCacheMisses       uint64
	coursesCreated          uint64
	coursesUpdated          uint64
	coursesDeleted          uint64
	contactMessagesReceived uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:         atomic.LoadUint64(&m.usersRegistered),
		LoginSuccesses:          atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:           atomic.LoadUint64(&m.loginFailures),
		CourseCacheHits:         atomic.LoadUint64(&m.courseCacheHits),
		CourseCacheMisses:       atomic.LoadUint64(&m.courseCacheMisses),
		CoursesCreated:          atomic.LoadUint64(&m.coursesCreated),
		CoursesUpdated:          atomic.LoadUint64(&m.coursesUpdated),
		CoursesDeleted:          atomic.LoadUint64(&m.coursesDeleted),
		ContactMessagesReceived: atomic.LoadUint64(&m.contactMessagesReceived),
	}
}

// IncUserRegistered increments the registered users counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSuccess increments the successful logins counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed logins counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncCourseCacheHit increments the course cache hit counter.
func (m *InMemoryRecorder) IncCourseCacheHit() {
	atomic.AddUint64(&m.courseCacheHits, 1)
}

// IncCourseCacheMiss increments the course cache miss counter.
func (m *InMemoryRecorder) IncCourseCacheMiss() {
	atomic.AddUint64(&m.courseCacheMisses, 1)
}

// IncCourseCreated increments the courses created counter.
func (m *InMemoryRecorder) IncCourseCreated() {
	atomic.AddUint64(&m.coursesCreated, 1)
}

// IncCourseUpdated increments the courses updated counter.
func (m *InMemoryRecorder) IncCourseUpdated() {
	atomic.AddUint64(&m.coursesUpdated, 1)
}

// IncCourseDeleted increments the courses deleted counter.
func (m *InMemoryRecorder) IncCourseDeleted() {
	atomic.AddUint64(&m.coursesDeleted, 1)
}

// IncContactMessageReceived increments the contact messages counter.
func (m *InMemoryRecorder) IncContactMessageReceived() {
	atomic.AddUint64(&m.contactMessagesReceived, 1)
}
