package dto

import (
	"time"

	"github.com/learnbca/learnbca/internal/model"
)

// CourseRequest represents the request body for creating or updating a course.
type CourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Teacher     string `json:"teacher,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// CourseResponse represents a course in API responses.
type CourseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Teacher     string    `json:"teacher"`
	Duration    string    `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CourseListResponse represents the full course catalog.
type CourseListResponse struct {
	Data []CourseResponse `json:"data"`
}

// ToCourseResponse converts a Course model to CourseResponse DTO.
func ToCourseResponse(course *model.Course) *CourseResponse {
	return &CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Teacher:     course.Teacher,
		Duration:    course.Duration,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

// ToCourseListResponse converts a slice of Course models to CourseListResponse.
func ToCourseListResponse(courses []*model.Course) *CourseListResponse {
	responses := make([]CourseResponse, len(courses))
	for i, course := range courses {
		responses[i] = *ToCourseResponse(course)
	}
	return &CourseListResponse{Data: responses}
}
