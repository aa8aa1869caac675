package author

import "errors"

var (
	// ErrAuthorNotFound - no author with the requested id exists
	ErrAuthorNotFound = errors.New("author not found")
)
