package book

import "errors"

var (
	// ErrBookNotFound - no book with the requested id exists
	ErrBookNotFound = errors.New("book not found")

	// ErrAuthorNotExist - the referenced author does not exist at
	// book-creation time (application-level integrity check, with the
	// foreign key as defense-in-depth)
	ErrAuthorNotExist = errors.New("author does not exist")
)
