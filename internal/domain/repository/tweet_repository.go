package repository

import (
	"context"

	"github.com/videotube/backend/internal/domain/entity"
)

// TweetRepository defines tweet persistence.
type TweetRepository interface {
	Create(ctx context.Context, t *entity.Tweet) error
	GetByID(ctx context.Context, id string) (*entity.Tweet, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]entity.TweetWithOwner, error)
}
