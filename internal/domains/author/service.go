package author

import "context"

// Service defines business logic operations for the Author domain.
type Service interface {
	// Create validates the request and inserts a new author with a
	// server-assigned id.
	// Errors: validation.Errors on invalid input.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetAll returns all registered authors (possibly empty).
	GetAll(ctx context.Context) ([]Author, error)
}
