package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnbca/learnbca/internal/model"
)

const (
	// courseKeyPrefix namespaces course cache entries.
	courseKeyPrefix = "course:"

	// DefaultCourseTTL is the TTL for cached course data.
	DefaultCourseTTL = time.Hour
)

// ErrCacheMiss is returned when a key is not present in the cache.
var ErrCacheMiss = errors.New("cache miss")

// GetCourse retrieves a course from cache by ID.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	key := courseKeyPrefix + id

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var course model.Course
	if err := json.Unmarshal(data, &course); err != nil {
		// Corrupted cache entry - drop it and treat as a miss.
		c.client.Del(ctx, key)
		return nil, ErrCacheMiss
	}

	return &course, nil
}

// SetCourse stores a course in cache.
func (c *Cache) SetCourse(ctx context.Context, course *model.Course) error {
	key := courseKeyPrefix + course.ID

	data, err := json.Marshal(course)
	if err != nil {
		return fmt.Errorf("marshal course: %w", err)
	}

	if err := c.client.Set(ctx, key, data, DefaultCourseTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache course: %w", err)
	}

	return nil
}

// DeleteCourse removes a course from cache.
// Called after updates and deletes so stale data is never served.
func (c *Cache) DeleteCourse(ctx context.Context, id string) error {
	key := courseKeyPrefix + id

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete course from cache: %w", err)
	}

	return nil
}
