package repository

import (
	"context"
	"fmt"

	"github.com/learnbca/learnbca/internal/model"
)

// CreateContactMessage inserts a new contact-form submission.
func (r *Repository) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

// ListContactMessages retrieves all contact messages, newest first.
func (r *Repository) ListContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*model.ContactMessage, 0)
	for rows.Next() {
		var msg model.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Subject,
			&msg.Message,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact message rows: %w", err)
	}

	return messages, nil
}
