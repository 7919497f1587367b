package application

import (
	"context"
	"errors"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
)

// DashboardService serves the channel owner's dashboard aggregates.
type DashboardService struct {
	Stats repository.StatsRepository
}

func NewDashboardService(stats repository.StatsRepository) *DashboardService {
	return &DashboardService{Stats: stats}
}

func (s *DashboardService) ChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error) {
	st, err := s.Stats.ChannelStats(ctx, channelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "channel not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load channel stats")
	}
	return st, nil
}

func (s *DashboardService) ChannelVideos(ctx context.Context, channelID string) ([]entity.ChannelVideo, error) {
	out, err := s.Stats.ChannelVideos(ctx, channelID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not load channel videos")
	}
	return out, nil
}
