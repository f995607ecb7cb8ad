// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/learnbca/learnbca/internal/auth"
	"github.com/learnbca/learnbca/internal/metrics"
	"github.com/learnbca/learnbca/internal/model"
	"github.com/learnbca/learnbca/internal/repository"
)

// Auth service errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password is too short")
)

// Email validation: local@domain with at least one dot in the domain.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// decoyPasswordHash is a well-formed hash that matches no password.
// Login verifies against it when the email is not registered, so the
// unknown-email path burns the same hashing cost as a real check and
// response timing does not reveal which emails exist.
const decoyPasswordHash = "$argon2id$v=19$m=65536,t=3,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

const (
	minPasswordLength = 8
	maxEmailLength    = 254
	maxNameLength     = 100
)

// UserStore is the credential storage consumed by the auth service.
// Implemented by *repository.Repository.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

// TokenIssuer creates signed session tokens.
// Implemented by *auth.TokenService.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService orchestrates registration and login.
type AuthService struct {
	users   UserStore
	tokens  TokenIssuer
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens TokenIssuer, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:   users,
		tokens:  tokens,
		metrics: recorder,
	}
}

// Register creates a new user with a hashed password.
// Fails with ErrEmailTaken if the email is already registered.
// The returned user never carries the plaintext password.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" || len(name) > maxNameLength {
		return nil, ErrNameRequired
	}
	if len(email) > maxEmailLength || !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Pre-check for an existing account. This is an optimization only;
	// the unique index on users(email) is the source of truth under
	// concurrent registrations.
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Lost a registration race for the same email.
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// LoginResult is the successful output of Login.
type LoginResult struct {
	Token string
	User  model.PublicUser
}

// Login verifies the credentials and issues a session token.
// Unknown email and wrong password both return ErrInvalidCredentials
// so callers cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_, _ = auth.VerifyPassword(password, decoyPasswordHash)
			s.metrics.IncLoginFailure()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		// A malformed stored hash fails closed as a credential mismatch.
		s.metrics.IncLoginFailure()
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return &LoginResult{
		Token: token,
		User:  user.Public(),
	}, nil
}

// normalizeEmail lowercases and trims an email address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
