package book

import (
	"time"

	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
)

// MaxTitleLength mirrors the VARCHAR(100) column so validation stays
// symmetric with the store boundary.
const MaxTitleLength = 100

// Book represents the core Book entity. Ownership is by reference only:
// the book stores its author's id and the related Author is loaded by
// an explicit join, never by a live back-pointer.
type Book struct {
	// Identity - UUID assigned at creation, immutable
	ID uuid.UUID `json:"id" db:"id"`

	// Required, max 100 chars
	Title string `json:"title" db:"title"`

	// Reference to an existing author, immutable once created
	AuthorID uuid.UUID `json:"author_id" db:"author_id"`

	// Related author, eagerly fetched whenever the book is read for
	// a response. Nil only on a freshly-built entity before loading.
	Author *author.Author `json:"author,omitempty"`

	// Audit timestamp, internal only
	CreatedAt time.Time `json:"-" db:"created_at"`
}
