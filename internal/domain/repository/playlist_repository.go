package repository

import (
	"context"

	"github.com/videotube/backend/internal/domain/entity"
)

// PlaylistRepository defines playlist persistence. AddVideo returns
// ErrDuplicate when the video is already in the playlist.
type PlaylistRepository interface {
	Create(ctx context.Context, p *entity.Playlist) error
	GetByID(ctx context.Context, id string) (*entity.Playlist, error)
	UpdateMeta(ctx context.Context, id, name, description string) (*entity.Playlist, error)
	Delete(ctx context.Context, id string) error
	AddVideo(ctx context.Context, playlistID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, videoID string) error

	// Populated reads join the referenced video records.
	GetPopulated(ctx context.Context, id string) (*entity.PopulatedPlaylist, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.PopulatedPlaylist, error)
}
