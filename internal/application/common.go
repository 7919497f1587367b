package application

import (
	"io"

	"github.com/google/uuid"
)

// FileUpload carries a multipart file from the handler to a service without
// binding services to the HTTP layer.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// validID reports whether id is a well-formed UUID. Malformed path IDs fail
// fast as validation errors instead of surfacing datastore cast errors.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
