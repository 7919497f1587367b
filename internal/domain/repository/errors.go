package repository

import "errors"

// Sentinel errors repositories translate datastore failures into; services
// map them onto the API error taxonomy.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)
