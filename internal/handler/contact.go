package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/learnbca/learnbca/internal/handler/dto"
	"github.com/learnbca/learnbca/internal/service"
)

// ContactHandler handles HTTP requests for contact messages.
type ContactHandler struct {
	svc    *service.ContactService
	logger *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		svc:    svc,
		logger: logger,
	}
}

// Submit handles POST /api/contact. Public endpoint.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	msg, err := h.svc.Submit(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.handleContactError(w, err)
		return
	}

	h.logger.Info("contact_message_received", "message_id", msg.ID)

	writeJSON(w, http.StatusCreated, dto.ToContactResponse(msg))
}

// List handles GET /api/contact. Requires authentication.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.ListMessages(r.Context())
	if err != nil {
		h.handleContactError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContactListResponse(messages))
}

// handleContactError maps contact service errors to HTTP responses.
func (h *ContactHandler) handleContactError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMessageRequired):
		writeError(w, http.StatusBadRequest, "MESSAGE_REQUIRED", "Message body is required")
	case errors.Is(err, service.ErrMessageTooLong):
		writeError(w, http.StatusBadRequest, "MESSAGE_TOO_LONG", "Message exceeds maximum length")
	case errors.Is(err, service.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "INVALID_EMAIL", "Invalid email address")
	default:
		h.logger.Error("contact request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}
