package repository

import (
	"context"

	"github.com/videotube/backend/internal/domain/entity"
)

// StatsRepository serves the channel dashboard. Both reads are pure
// aggregation queries evaluated by the datastore.
type StatsRepository interface {
	ChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error)
	ChannelVideos(ctx context.Context, channelID string) ([]entity.ChannelVideo, error)
}
