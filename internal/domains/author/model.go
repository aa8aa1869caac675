package author

import (
	"time"

	"github.com/google/uuid"
)

// MaxNameLength is enforced both here and by the VARCHAR(50) column,
// keeping application validation symmetric with the store boundary.
const MaxNameLength = 50

// Author represents the core Author entity.
// This is the domain model, independent of database/API concerns.
type Author struct {
	// Identity - UUID assigned at creation, immutable
	ID uuid.UUID `json:"id" db:"id"`

	// Required, max 50 chars
	Name string `json:"name" db:"name"`

	// Audit timestamp, internal only (never serialized in responses)
	CreatedAt time.Time `json:"-" db:"created_at"`
}
