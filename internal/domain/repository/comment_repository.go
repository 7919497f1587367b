package repository

import (
	"context"

	"github.com/videotube/backend/internal/domain/entity"
)

// CommentRepository defines comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id string) error

	// ListByVideo joins the commenter snippet and like counts, paginated.
	ListByVideo(ctx context.Context, videoID string, page, limit int) ([]entity.CommentWithMeta, error)
}
