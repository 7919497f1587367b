package repository

import (
	"context"

	"github.com/videotube/backend/internal/domain/entity"
)

// LikeRepository defines like persistence. Each Find* returns ErrNotFound
// when the user has not liked the target, which is how toggles decide.
type LikeRepository interface {
	Create(ctx context.Context, l *entity.Like) error
	Delete(ctx context.Context, id string) error
	FindByVideo(ctx context.Context, likedBy, videoID string) (*entity.Like, error)
	FindByComment(ctx context.Context, likedBy, commentID string) (*entity.Like, error)
	FindByTweet(ctx context.Context, likedBy, tweetID string) (*entity.Like, error)

	// LikedVideos joins the liked videos with their owner snippets.
	LikedVideos(ctx context.Context, likedBy string) ([]entity.LikedVideo, error)
}
