// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/learnbca/learnbca/internal/model"

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse confirms a successful registration.
// No token is issued at registration; the client must log in.
type RegisterResponse struct {
	Message string          `json:"message"`
	User    model.PublicUser `json:"user"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the public user view.
type LoginResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// ErrorDetail describes a single API error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
