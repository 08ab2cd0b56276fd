// Package template is a mock template service: a collaborator that produces
// typed errors for the uniform error-rendering layer. The data path is
// deliberately trivial.
package template

import "context"

// Template is the service's resource.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// CreateParams carries the fields of a new template.
type CreateParams struct {
	Name        string
	Description string
	Content     string
}

// Service is the mock template service.
type Service struct{}

// NewService creates the mock service.
func NewService() *Service { return &Service{} }

// Get returns the template with the given id. Mock behavior: the id
// "not_found" triggers the NotFound variant.
func (s *Service) Get(_ context.Context, id string) (*Template, error) {
	if id == "not_found" {
		return nil, NotFound(id)
	}
	return &Template{ID: id}, nil
}

// Create stores a new template and returns it with an assigned id.
func (s *Service) Create(_ context.Context, params CreateParams) (*Template, error) {
	return &Template{
		ID:          "1",
		Name:        params.Name,
		Description: params.Description,
		Content:     params.Content,
	}, nil
}
