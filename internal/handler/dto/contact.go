package dto

import (
	"time"

	"github.com/learnbca/learnbca/internal/model"
)

// ContactRequest represents a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// ContactResponse represents a stored contact message.
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListResponse represents all stored contact messages.
type ContactListResponse struct {
	Data []ContactResponse `json:"data"`
}

// ToContactResponse converts a ContactMessage model to ContactResponse DTO.
func ToContactResponse(msg *model.ContactMessage) *ContactResponse {
	return &ContactResponse{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
}

// ToContactListResponse converts ContactMessage models to ContactListResponse.
func ToContactListResponse(msgs []*model.ContactMessage) *ContactListResponse {
	responses := make([]ContactResponse, len(msgs))
	for i, msg := range msgs {
		responses[i] = *ToContactResponse(msg)
	}
	return &ContactListResponse{Data: responses}
}
