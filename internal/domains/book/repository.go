package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the Book entity. Implementations
// must scope each operation to its own store session, and read books
// together with their related author via an explicit join.
type Repository interface {
	// Create inserts a new book. A foreign-key violation on author_id
	// is translated to ErrAuthorNotExist.
	Create(ctx context.Context, book *Book) error

	// GetAll returns every stored book with its author embedded,
	// oldest first.
	GetAll(ctx context.Context) ([]Book, error)

	// GetByID retrieves a book with its author embedded.
	// Returns ErrBookNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// Delete removes a book by id. The read-then-delete pair runs on a
	// single acquired session.
	// Returns ErrBookNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
