package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/learnbca/learnbca/internal/model"
)

// ErrCourseNotFound is returned when a course does not exist.
var ErrCourseNotFound = errors.New("course not found")

// CreateCourse inserts a new course into the database.
func (r *Repository) CreateCourse(ctx context.Context, course *model.Course) error {
	query := `
		INSERT INTO courses (id, title, description, teacher, duration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Teacher,
		course.Duration,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	return nil
}

// GetCourseByID retrieves a course by its ID.
func (r *Repository) GetCourseByID(ctx context.Context, id string) (*model.Course, error) {
	query := `
		SELECT id, title, description, teacher, duration, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course model.Course
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Teacher,
		&course.Duration,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course by ID: %w", err)
	}

	return &course, nil
}

// ListCourses retrieves all courses ordered by creation time, newest first.
func (r *Repository) ListCourses(ctx context.Context) ([]*model.Course, error) {
	query := `
		SELECT id, title, description, teacher, duration, created_at, updated_at
		FROM courses
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*model.Course, 0)
	for rows.Next() {
		var course model.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.Teacher,
			&course.Duration,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate course rows: %w", err)
	}

	return courses, nil
}

// UpdateCourse replaces the mutable fields of an existing course.
func (r *Repository) UpdateCourse(ctx context.Context, course *model.Course) error {
	query := `
		UPDATE courses
		SET title = $2, description = $3, teacher = $4, duration = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Teacher,
		course.Duration,
		course.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// DeleteCourse removes a course by ID.
func (r *Repository) DeleteCourse(ctx context.Context, id string) error {
	query := `DELETE FROM courses WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}
