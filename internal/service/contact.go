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
)

// Contact service errors.
var (
	ErrMessageRequired = errors.New("message body is required")
	ErrMessageTooLong  = errors.New("message exceeds maximum length")
)

const (
	maxSubjectLength = 200
	maxMessageLength = 8000
)

// ContactStore is the persistence layer consumed by the contact service.
// Implemented by *repository.Repository.
type ContactStore interface {
	CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error)
}

// ContactService handles contact-form submissions.
type ContactService struct {
	store   ContactStore
	metrics metrics.Recorder
}

// NewContactService creates a new ContactService.
func NewContactService(store ContactStore, recorder metrics.Recorder) *ContactService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ContactService{
		store:   store,
		metrics: recorder,
	}
}

// ContactInput defines a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit validates and stores a contact message.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*model.ContactMessage, error) {
	input.Message = strings.TrimSpace(input.Message)
	if input.Message == "" {
		return nil, ErrMessageRequired
	}
	if len(input.Message) > maxMessageLength || len(input.Subject) > maxSubjectLength {
		return nil, ErrMessageTooLong
	}

	email := normalizeEmail(input.Email)
	if email != "" && (len(email) > maxEmailLength || !emailRegex.MatchString(email)) {
		return nil, ErrInvalidEmail
	}

	msg := &model.ContactMessage{
		ID:        ulid.Make().String(),
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Subject:   strings.TrimSpace(input.Subject),
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	s.metrics.IncContactMessageReceived()

	return msg, nil
}

// ListMessages returns all contact messages, newest first.
func (s *ContactService) ListMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.store.ListContactMessages(ctx)
}
