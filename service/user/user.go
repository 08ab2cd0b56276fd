// Package user is a mock user service: a collaborator that produces typed
// errors for the uniform error-rendering layer.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// User is the service's resource.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateParams carries the fields of a new user.
type CreateParams struct {
	Email string
	Name  string
}

// Service is the mock user service.
type Service struct{}

// NewService creates the mock service.
func NewService() *Service { return &Service{} }

// Get returns the user with the given id. Mock behavior: the id "not_found"
// triggers the NotFound variant.
func (s *Service) Get(_ context.Context, id string) (*User, error) {
	if id == "not_found" {
		return nil, NotFound(id)
	}
	return &User{ID: id, Email: "user@example.com", Name: "John Doe"}, nil
}

// Create stores a new user. Mock behavior keyed off the email: "invalid"
// triggers InvalidEmail, "exists" triggers AlreadyExists, "db_error" triggers
// Database with a two-link cause chain.
func (s *Service) Create(_ context.Context, params CreateParams) (*User, error) {
	switch {
	case strings.Contains(params.Email, "invalid"):
		return nil, InvalidEmail(params.Email)
	case strings.Contains(params.Email, "exists"):
		return nil, AlreadyExists()
	case strings.Contains(params.Email, "db_error"):
		root := errors.New("connection timeout")
		return nil, Database(fmt.Errorf("insert user: %w", root))
	}
	return &User{ID: "new_user_id", Email: params.Email, Name: params.Name}, nil
}
