package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/learnbca/learnbca/internal/metrics"
	"github.com/learnbca/learnbca/internal/model"
	"github.com/learnbca/learnbca/internal/repository"
)

// Course service errors.
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrTitleRequired  = errors.New("course title is required")
	ErrFieldTooLong   = errors.New("course field exceeds maximum length")
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 4000
	maxTeacherLength     = 100
	maxDurationLength    = 50
)

// CourseStore is the persistence layer consumed by the course service.
// Implemented by *repository.Repository.
type CourseStore interface {
	CreateCourse(ctx context.Context, course *model.Course) error
	GetCourseByID(ctx context.Context, id string) (*model.Course, error)
	ListCourses(ctx context.Context) ([]*model.Course, error)
	UpdateCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, id string) error
}

// CourseCache is the read cache consumed by the course service.
// Implemented by *cache.Cache. Cache failures are soft; the service
// always falls back to the store.
type CourseCache interface {
	GetCourse(ctx context.Context, id string) (*model.Course, error)
	SetCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, id string) error
}

// CourseService handles course catalog business logic.
type CourseService struct {
	store   CourseStore
	cache   CourseCache
	metrics metrics.Recorder
}

// NewCourseService creates a new CourseService.
// cache may be nil, in which case all reads go to the store.
func NewCourseService(store CourseStore, cache CourseCache, recorder metrics.Recorder) *CourseService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CourseService{
		store:   store,
		cache:   cache,
		metrics: recorder,
	}
}

// CourseInput defines the writable fields of a course.
type CourseInput struct {
	Title       string
	Description string
	Teacher     string
	Duration    string
}

func (in *CourseInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return ErrTitleRequired
	}
	if len(in.Title) > maxTitleLength ||
		len(in.Description) > maxDescriptionLength ||
		len(in.Teacher) > maxTeacherLength ||
		len(in.Duration) > maxDurationLength {
		return ErrFieldTooLong
	}
	return nil
}

// CreateCourse adds a new course to the catalog.
func (s *CourseService) CreateCourse(ctx context.Context, input CourseInput) (*model.Course, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	course := &model.Course{
		ID:          ulid.Make().String(),
		Title:       input.Title,
		Description: input.Description,
		Teacher:     input.Teacher,
		Duration:    input.Duration,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.metrics.IncCourseCreated()

	return course, nil
}

// GetCourse retrieves a single course, reading through the cache.
func (s *CourseService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	if s.cache != nil {
		if course, err := s.cache.GetCourse(ctx, id); err == nil {
			s.metrics.IncCourseCacheHit()
			return course, nil
		}
		s.metrics.IncCourseCacheMiss()
	}

	course, err := s.store.GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetCourse(ctx, course)
	}

	return course, nil
}

// ListCourses retrieves the full catalog, newest first.
func (s *CourseService) ListCourses(ctx context.Context) ([]*model.Course, error) {
	return s.store.ListCourses(ctx)
}

// UpdateCourse replaces the writable fields of an existing course.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, input CourseInput) (*model.Course, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Teacher = input.Teacher
	existing.Duration = input.Duration
	existing.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateCourse(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.DeleteCourse(ctx, id)
	}

	s.metrics.IncCourseUpdated()

	return existing, nil
}

// DeleteCourse removes a course from the catalog.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.store.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.DeleteCourse(ctx, id)
	}

	s.metrics.IncCourseDeleted()

	return nil
}
