//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/learnbca/learnbca/internal/testutil"
)

func newCourseTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()

	databaseURL := testutil.RequireEnv(t, "TEST_DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	repo, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("failed to acquire DB lock: %v", err)
	}
	t.Cleanup(func() {
		if err := unlock(); err != nil {
			t.Errorf("failed to release DB lock: %v", err)
		}
	})

	if err := testutil.ResetCoursesSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("failed to reset courses schema: %v", err)
	}

	return ctx, repo
}

func TestIntegrationCourseRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newCourseTestEnv(t)

	course := testutil.NewTestCourse(t, "Integration Testing 101")

	if err := repo.CreateCourse(ctx, course); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	retrieved, err := repo.GetCourseByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourseByID failed: %v", err)
	}

	if retrieved.Title != course.Title {
		t.Errorf("Title mismatch: got %q, want %q", retrieved.Title, course.Title)
	}
	if retrieved.Teacher != course.Teacher {
		t.Errorf("Teacher mismatch: got %q, want %q", retrieved.Teacher, course.Teacher)
	}
}

func TestIntegrationCourseRepository_GetByID_NotFound(t *testing.T) {
	ctx, repo := newCourseTestEnv(t)

	_, err := repo.GetCourseByID(ctx, testutil.UniqueID("missing"))
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("Expected ErrCourseNotFound, got: %v", err)
	}
}

func TestIntegrationCourseRepository_ListNewestFirst(t *testing.T) {
	ctx, repo := newCourseTestEnv(t)

	older := testutil.NewTestCourse(t, "Older Course")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	older.UpdatedAt = older.CreatedAt

	newer := testutil.NewTestCourse(t, "Newer Course")
	newer.ID = testutil.UniqueID("course")

	if err := repo.CreateCourse(ctx, older); err != nil {
		t.Fatalf("CreateCourse (older) failed: %v", err)
	}
	if err := repo.CreateCourse(ctx, newer); err != nil {
		t.Fatalf("CreateCourse (newer) failed: %v", err)
	}

	courses, err := repo.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}

	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if courses[0].ID != newer.ID {
		t.Errorf("expected newest course first, got %q", courses[0].Title)
	}
}

func TestIntegrationCourseRepository_Update(t *testing.T) {
	ctx, repo := newCourseTestEnv(t)

	course := testutil.NewTestCourse(t, "Before Update")
	if err := repo.CreateCourse(ctx, course); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	course.Title = "After Update"
	course.UpdatedAt = time.Now().UTC()
	if err := repo.UpdateCourse(ctx, course); err != nil {
		t.Fatalf("UpdateCourse failed: %v", err)
	}

	retrieved, err := repo.GetCourseByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourseByID failed: %v", err)
	}
	if retrieved.Title != "After Update" {
		t.Errorf("Title mismatch: got %q", retrieved.Title)
	}
}

func TestIntegrationCourseRepository_Update_NotFound(t *testing.T) {
	ctx, repo := newCourseTestEnv(t)

	course := testutil.NewTestCourse(t, "Ghost")
	err := repo.UpdateCourse(ctx, course)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("Expected ErrCourseNotFound, got: %v", err)
	}
}

func TestIntegrationCourseRepository_Delete(t *testing.T) {
	ctx, repo := newCourseTestEnv(t)

	course := testutil.NewTestCourse(t, "Doomed")
	if err := repo.CreateCourse(ctx, course); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	if err := repo.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}

	if _, err := repo.GetCourseByID(ctx, course.ID); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("Expected ErrCourseNotFound after delete, got: %v", err)
	}

	if err := repo.DeleteCourse(ctx, course.ID); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("Expected ErrCourseNotFound on second delete, got: %v", err)
	}
}
