package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/learnbca/learnbca/internal/auth"
	"github.com/learnbca/learnbca/internal/handler/dto"
	"github.com/learnbca/learnbca/internal/service"
)

// CourseHandler handles HTTP requests for course operations.
type CourseHandler struct {
	svc    *service.CourseService
	logger *slog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(svc *service.CourseService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/courses.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	course, err := h.svc.CreateCourse(r.Context(), service.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Teacher:     req.Teacher,
		Duration:    req.Duration,
	})
	if err != nil {
		h.handleCourseError(w, err)
		return
	}

	h.logger.Info("course_created",
		"course_id", course.ID,
		"user_id", auth.UserIDFromContext(r.Context()),
	)

	writeJSON(w, http.StatusCreated, dto.ToCourseResponse(course))
}

// Get handles GET /api/courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Course ID is required")
		return
	}

	course, err := h.svc.GetCourse(r.Context(), id)
	if err != nil {
		h.handleCourseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCourseResponse(course))
}

// List handles GET /api/courses.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.ListCourses(r.Context())
	if err != nil {
		h.handleCourseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCourseListResponse(courses))
}

// Update handles PUT /api/courses/{id}.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Course ID is required")
		return
	}

	var req dto.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	course, err := h.svc.UpdateCourse(r.Context(), id, service.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Teacher:     req.Teacher,
		Duration:    req.Duration,
	})
	if err != nil {
		h.handleCourseError(w, err)
		return
	}

	h.logger.Info("course_updated",
		"course_id", course.ID,
		"user_id", auth.UserIDFromContext(r.Context()),
	)

	writeJSON(w, http.StatusOK, dto.ToCourseResponse(course))
}

// Delete handles DELETE /api/courses/{id}.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Course ID is required")
		return
	}

	if err := h.svc.DeleteCourse(r.Context(), id); err != nil {
		h.handleCourseError(w, err)
		return
	}

	h.logger.Info("course_deleted",
		"course_id", id,
		"user_id", auth.UserIDFromContext(r.Context()),
	)

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Course deleted successfully",
	})
}

// handleCourseError maps course service errors to HTTP responses.
func (h *CourseHandler) handleCourseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		writeError(w, http.StatusNotFound, "COURSE_NOT_FOUND", "Course not found")
	case errors.Is(err, service.ErrTitleRequired):
		writeError(w, http.StatusBadRequest, "TITLE_REQUIRED", "Course title is required")
	case errors.Is(err, service.ErrFieldTooLong):
		writeError(w, http.StatusBadRequest, "FIELD_TOO_LONG", "Course field exceeds maximum length")
	default:
		h.logger.Error("course request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}
