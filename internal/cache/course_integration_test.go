//go:build integration

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnbca/learnbca/internal/testutil"
)

// newCacheTestEnv connects to the test Redis and flushes it.
// A raw client is returned alongside for direct key manipulation.
func newCacheTestEnv(t *testing.T) (context.Context, *Cache, *redis.Client) {
	t.Helper()

	redisURL := testutil.RequireEnv(t, "TEST_REDIS_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to test Redis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("failed to parse Redis URL: %v", err)
	}
	raw := redis.NewClient(opt)
	t.Cleanup(func() { _ = raw.Close() })

	if err := testutil.FlushRedis(ctx, raw); err != nil {
		t.Fatalf("failed to flush Redis: %v", err)
	}

	return ctx, c, raw
}

func TestIntegrationCache_SetAndGetCourse(t *testing.T) {
	ctx, c, _ := newCacheTestEnv(t)

	course := testutil.NewTestCourse(t, "Cached Course")

	if err := c.SetCourse(ctx, course); err != nil {
		t.Fatalf("SetCourse failed: %v", err)
	}

	got, err := c.GetCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourse failed: %v", err)
	}
	if got.ID != course.ID || got.Title != course.Title {
		t.Errorf("cached course mismatch: %+v", got)
	}
}

func TestIntegrationCache_GetCourse_Miss(t *testing.T) {
	ctx, c, _ := newCacheTestEnv(t)

	_, err := c.GetCourse(ctx, testutil.UniqueID("missing"))
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss, got: %v", err)
	}
}

func TestIntegrationCache_DeleteCourse(t *testing.T) {
	ctx, c, _ := newCacheTestEnv(t)

	course := testutil.NewTestCourse(t, "Evicted Course")
	if err := c.SetCourse(ctx, course); err != nil {
		t.Fatalf("SetCourse failed: %v", err)
	}

	if err := c.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}

	if _, err := c.GetCourse(ctx, course.ID); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss after delete, got: %v", err)
	}

	// Deleting a missing key is not an error.
	if err := c.DeleteCourse(ctx, course.ID); err != nil {
		t.Errorf("DeleteCourse on missing key failed: %v", err)
	}
}

func TestIntegrationCache_CorruptedEntryTreatedAsMiss(t *testing.T) {
	ctx, c, raw := newCacheTestEnv(t)

	id := testutil.UniqueID("corrupt")
	if err := raw.Set(ctx, "course:"+id, "{not json", time.Minute).Err(); err != nil {
		t.Fatalf("failed to plant corrupted entry: %v", err)
	}

	if _, err := c.GetCourse(ctx, id); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("Expected ErrCacheMiss for corrupted entry, got: %v", err)
	}

	// The corrupted entry is dropped.
	if err := raw.Get(ctx, "course:"+id).Err(); !errors.Is(err, redis.Nil) {
		t.Errorf("Expected corrupted entry to be deleted, got: %v", err)
	}
}
