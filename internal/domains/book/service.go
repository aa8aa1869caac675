package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Book domain.
type Service interface {
	// Create validates the request, verifies the referenced author
	// exists, inserts the book and returns it with the author embedded.
	// Errors: validation.Errors on invalid input, ErrAuthorNotExist if
	// the referenced author is missing.
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// GetAll returns all books, each with its author embedded.
	GetAll(ctx context.Context) ([]Book, error)

	// GetByID returns one book with its author embedded.
	// Errors: ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// Delete removes a book permanently.
	// Errors: ErrBookNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
