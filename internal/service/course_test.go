package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/learnbca/learnbca/internal/cache"
	"github.com/learnbca/learnbca/internal/metrics"
	"github.com/learnbca/learnbca/internal/model"
	"github.com/learnbca/learnbca/internal/repository"
)

// fakeCourseStore is an in-memory CourseStore.
type fakeCourseStore struct {
	courses map[string]*model.Course
	order   []string
	gets    int
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[string]*model.Course)}
}

func (f *fakeCourseStore) CreateCourse(_ context.Context, course *model.Course) error {
	f.courses[course.ID] = course
	f.order = append(f.order, course.ID)
	return nil
}

func (f *fakeCourseStore) GetCourseByID(_ context.Context, id string) (*model.Course, error) {
	f.gets++
	course, ok := f.courses[id]
	if !ok {
		return nil, repository.ErrCourseNotFound
	}
	clone := *course
	return &clone, nil
}

func (f *fakeCourseStore) ListCourses(_ context.Context) ([]*model.Course, error) {
	out := make([]*model.Course, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, f.courses[f.order[i]])
	}
	return out, nil
}

func (f *fakeCourseStore) UpdateCourse(_ context.Context, course *model.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return repository.ErrCourseNotFound
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) DeleteCourse(_ context.Context, id string) error {
	if _, ok := f.courses[id]; !ok {
		return repository.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

// fakeCourseCache is an in-memory CourseCache.
type fakeCourseCache struct {
	entries map[string]*model.Course
	broken  bool
}

func newFakeCourseCache() *fakeCourseCache {
	return &fakeCourseCache{entries: make(map[string]*model.Course)}
}

func (f *fakeCourseCache) GetCourse(_ context.Context, id string) (*model.Course, error) {
	if f.broken {
		return nil, errors.New("cache unavailable")
	}
	course, ok := f.entries[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return course, nil
}

func (f *fakeCourseCache) SetCourse(_ context.Context, course *model.Course) error {
	if f.broken {
		return errors.New("cache unavailable")
	}
	f.entries[course.ID] = course
	return nil
}

func (f *fakeCourseCache) DeleteCourse(_ context.Context, id string) error {
	if f.broken {
		return errors.New("cache unavailable")
	}
	delete(f.entries, id)
	return nil
}

func newTestCourseService() (*CourseService, *fakeCourseStore, *fakeCourseCache, *metrics.InMemoryRecorder) {
	store := newFakeCourseStore()
	courseCache := newFakeCourseCache()
	recorder := metrics.NewInMemory()
	return NewCourseService(store, courseCache, recorder), store, courseCache, recorder
}

func TestCourseService_CreateCourse(t *testing.T) {
	t.Parallel()

	svc, store, _, recorder := newTestCourseService()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, CourseInput{
		Title:       "  Data Structures  ",
		Description: "Trees, heaps and graphs",
		Teacher:     "Dr. Rao",
		Duration:    "12 weeks",
	})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	if course.ID == "" {
		t.Error("expected a generated course ID")
	}
	if course.Title != "Data Structures" {
		t.Errorf("expected trimmed title, got %q", course.Title)
	}
	if course.CreatedAt.IsZero() || !course.CreatedAt.Equal(course.UpdatedAt) {
		t.Error("expected CreatedAt == UpdatedAt on creation")
	}
	if _, ok := store.courses[course.ID]; !ok {
		t.Error("course not persisted")
	}
	if got := recorder.Snapshot().CoursesCreated; got != 1 {
		t.Errorf("expected 1 course created recorded, got %d", got)
	}
}

func TestCourseService_CreateCourse_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestCourseService()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CourseInput
		wantErr error
	}{
		{"empty title", CourseInput{Title: "   "}, ErrTitleRequired},
		{"title too long", CourseInput{Title: strings.Repeat("a", 201)}, ErrFieldTooLong},
		{"description too long", CourseInput{Title: "ok", Description: strings.Repeat("a", 4001)}, ErrFieldTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.CreateCourse(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCourseService_GetCourse_ReadThrough(t *testing.T) {
	t.Parallel()

	svc, store, courseCache, recorder := newTestCourseService()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, CourseInput{Title: "Networking"})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	// First read misses the cache, hits the store, populates the cache.
	got, err := svc.GetCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourse failed: %v", err)
	}
	if got.ID != course.ID {
		t.Errorf("unexpected course: %+v", got)
	}
	if _, ok := courseCache.entries[course.ID]; !ok {
		t.Error("expected cache to be populated after a miss")
	}
	if store.gets != 1 {
		t.Errorf("expected 1 store read, got %d", store.gets)
	}

	// Second read is served from the cache.
	if _, err := svc.GetCourse(ctx, course.ID); err != nil {
		t.Fatalf("cached GetCourse failed: %v", err)
	}
	if store.gets != 1 {
		t.Errorf("expected cache to serve the second read, store reads = %d", store.gets)
	}

	snap := recorder.Snapshot()
	if snap.CourseCacheMisses != 1 || snap.CourseCacheHits != 1 {
		t.Errorf("expected 1 miss and 1 hit, got misses=%d hits=%d", snap.CourseCacheMisses, snap.CourseCacheHits)
	}
}

func TestCourseService_GetCourse_CacheFailureFallsBack(t *testing.T) {
	t.Parallel()

	svc, _, courseCache, _ := newTestCourseService()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, CourseInput{Title: "Databases"})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	courseCache.broken = true

	got, err := svc.GetCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("expected store fallback when the cache is down, got %v", err)
	}
	if got.ID != course.ID {
		t.Errorf("unexpected course: %+v", got)
	}
}

func TestCourseService_GetCourse_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestCourseService()

	_, err := svc.GetCourse(context.Background(), "missing")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseService_ListCourses_NewestFirst(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestCourseService()
	ctx := context.Background()

	first, _ := svc.CreateCourse(ctx, CourseInput{Title: "First"})
	second, _ := svc.CreateCourse(ctx, CourseInput{Title: "Second"})

	courses, err := svc.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if courses[0].ID != second.ID || courses[1].ID != first.ID {
		t.Error("expected newest course first")
	}
}

func TestCourseService_UpdateCourse_InvalidatesCache(t *testing.T) {
	t.Parallel()

	svc, _, courseCache, recorder := newTestCourseService()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, CourseInput{Title: "Old Title"})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	// Warm the cache.
	if _, err := svc.GetCourse(ctx, course.ID); err != nil {
		t.Fatalf("GetCourse failed: %v", err)
	}

	updated, err := svc.UpdateCourse(ctx, course.ID, CourseInput{Title: "New Title", Teacher: "Dr. Rao"})
	if err != nil {
		t.Fatalf("UpdateCourse failed: %v", err)
	}
	if updated.Title != "New Title" || updated.Teacher != "Dr. Rao" {
		t.Errorf("unexpected updated course: %+v", updated)
	}
	if !updated.UpdatedAt.After(course.CreatedAt) && !updated.UpdatedAt.Equal(course.CreatedAt) {
		t.Error("expected UpdatedAt to advance")
	}

	if _, ok := courseCache.entries[course.ID]; ok {
		t.Error("expected cache entry to be invalidated on update")
	}

	// The next read sees the new title.
	got, err := svc.GetCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourse after update failed: %v", err)
	}
	if got.Title != "New Title" {
		t.Errorf("expected fresh read after invalidation, got %q", got.Title)
	}

	if got := recorder.Snapshot().CoursesUpdated; got != 1 {
		t.Errorf("expected 1 course update recorded, got %d", got)
	}
}

func TestCourseService_UpdateCourse_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestCourseService()

	_, err := svc.UpdateCourse(context.Background(), "missing", CourseInput{Title: "T"})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseService_DeleteCourse(t *testing.T) {
	t.Parallel()

	svc, store, courseCache, recorder := newTestCourseService()
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, CourseInput{Title: "Doomed"})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if _, err := svc.GetCourse(ctx, course.ID); err != nil {
		t.Fatalf("GetCourse failed: %v", err)
	}

	if err := svc.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}

	if _, ok := store.courses[course.ID]; ok {
		t.Error("expected course removed from store")
	}
	if _, ok := courseCache.entries[course.ID]; ok {
		t.Error("expected cache entry removed on delete")
	}
	if err := svc.DeleteCourse(ctx, course.ID); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound on second delete, got %v", err)
	}
	if got := recorder.Snapshot().CoursesDeleted; got != 1 {
		t.Errorf("expected 1 course delete recorded, got %d", got)
	}
}

func TestCourseService_NilCache(t *testing.T) {
	t.Parallel()

	store := newFakeCourseStore()
	svc := NewCourseService(store, nil, nil)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, CourseInput{Title: "No Cache"})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if _, err := svc.GetCourse(ctx, course.ID); err != nil {
		t.Fatalf("GetCourse without cache failed: %v", err)
	}
	if _, err := svc.UpdateCourse(ctx, course.ID, CourseInput{Title: "Still No Cache"}); err != nil {
		t.Fatalf("UpdateCourse without cache failed: %v", err)
	}
	if err := svc.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteCourse without cache failed: %v", err)
	}
}
