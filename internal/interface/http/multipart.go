package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/application"
)

// formFileUpload opens a multipart field as a service-level upload. The
// returned closer must run after the service consumed the reader.
func formFileUpload(c *gin.Context, field string) (*application.FileUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	up := &application.FileUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}
	return up, func() { _ = f.Close() }, nil
}
