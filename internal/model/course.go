package model

import "time"

// Course represents a catalog entry.
// Duration is free-form text (e.g. "3 Months").
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Teacher     string    `json:"teacher"`
	Duration    string    `json:"duration"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
