package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the Author entity. Implementations
// must scope each operation to its own store session: acquire on entry,
// release on every exit path.
type Repository interface {
	// Create inserts a new author. The entity already carries its
	// server-assigned id.
	Create(ctx context.Context, author *Author) error

	// GetAll returns every stored author, oldest first.
	GetAll(ctx context.Context) ([]Author, error)

	// GetByID retrieves an author by UUID. The book domain's pre-insert
	// integrity check fetches through this so the record is on hand for
	// embedding.
	// Returns ErrAuthorNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
}
