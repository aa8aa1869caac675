package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/author"
)

// CreateBookRequest - POST /books
// author_id is a pointer so a missing field is distinguishable from a
// present-but-unknown id: absence is a validation failure, while any
// supplied value (including the zero UUID) flows to the existence check
// and yields the "Author does not exist" condition.
type CreateBookRequest struct {
	Title    string     `json:"title"`
	AuthorID *uuid.UUID `json:"author_id"`
}

// Validate reports every violated field before any store access happens.
func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			// RuneLength counts characters, matching the VARCHAR(100) limit.
			validation.RuneLength(1, MaxTitleLength).Error("title must be at most 100 characters"),
		),
		validation.Field(&r.AuthorID,
			validation.NotNil.Error("author_id is required"),
		),
	)
}

// BookResponse embeds the full related author, not merely its id.
type BookResponse struct {
	ID       uuid.UUID             `json:"id"`
	Title    string                `json:"title"`
	AuthorID uuid.UUID             `json:"author_id"`
	Author   author.AuthorResponse `json:"author"`
}

// ToResponse converts a Book entity (with its author loaded) to the
// response DTO.
func (b Book) ToResponse() *BookResponse {
	resp := &BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		AuthorID: b.AuthorID,
	}
	if b.Author != nil {
		resp.Author = *b.Author.ToResponse()
	}
	return resp
}

// ToEntity converts a validated request to a Book entity with a freshly
// assigned id. The related author is attached by the service after
// its existence check.
func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		ID:       uuid.New(),
		Title:    r.Title,
		AuthorID: *r.AuthorID,
	}
}
