package repository

import (
	"context"

	"github.com/videotube/backend/internal/domain/entity"
)

// ListVideosParams narrows and orders the video listing. Query is only used
// by the SQL fallback; when Elasticsearch is configured the service resolves
// the query to IDs first and calls ListByIDs.
type ListVideosParams struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string // createdAt, views, duration, title
	SortDesc bool
	OwnerID  string // optional filter
}

// VideoRepository defines video persistence plus the aggregation reads the
// listing and watch pages need.
type VideoRepository interface {
	Create(ctx context.Context, v *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	Update(ctx context.Context, v *entity.Video) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error

	// Aggregations.
	List(ctx context.Context, p ListVideosParams) ([]entity.VideoWithOwner, int64, error)
	ListByIDs(ctx context.Context, ids []string) ([]entity.VideoWithOwner, error)
	Details(ctx context.Context, id string) (*entity.VideoDetails, error)
}
