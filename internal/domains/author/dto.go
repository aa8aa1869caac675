package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateAuthorRequest - POST /authors
// The id is never accepted from the caller; it is assigned server-side.
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

// Validate reports every violated field before any store access happens.
func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			// RuneLength counts characters, matching the VARCHAR(50) limit.
			validation.RuneLength(1, MaxNameLength).Error("name must be at most 50 characters"),
		),
	)
}

// AuthorResponse is the public projection of a stored Author.
type AuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToResponse converts an Author entity to its response DTO.
func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:   a.ID,
		Name: a.Name,
	}
}

// ToEntity converts the request to an Author entity with a freshly
// assigned id.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		ID:   uuid.New(),
		Name: r.Name,
	}
}
