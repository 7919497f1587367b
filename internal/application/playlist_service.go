package application

import (
	"context"
	"errors"
	"strings"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
)

// PlaylistService manages playlists; all writes are owner-only.
type PlaylistService struct {
	Playlists repository.PlaylistRepository
	Videos    repository.VideoRepository
}

func NewPlaylistService(playlists repository.PlaylistRepository, videos repository.VideoRepository) *PlaylistService {
	return &PlaylistService{Playlists: playlists, Videos: videos}
}

// Create makes an empty playlist.
func (s *PlaylistService) Create(ctx context.Context, ownerID, name, description string) (*entity.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.Validation, "name is required")
	}
	p := &entity.Playlist{OwnerID: ownerID, Name: name, Description: description}
	if err := s.Playlists.Create(ctx, p); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not create playlist")
	}
	return p, nil
}

// ListByUser returns a user's playlists with their videos populated.
func (s *PlaylistService) ListByUser(ctx context.Context, userID string) ([]entity.PopulatedPlaylist, error) {
	if !validID(userID) {
		return nil, apperr.New(apperr.Validation, "invalid user id")
	}
	out, err := s.Playlists.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not list playlists")
	}
	return out, nil
}

// Get returns one playlist with its videos populated.
func (s *PlaylistService) Get(ctx context.Context, playlistID string) (*entity.PopulatedPlaylist, error) {
	if !validID(playlistID) {
		return nil, apperr.New(apperr.Validation, "invalid playlist id")
	}
	p, err := s.Playlists.GetPopulated(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "playlist not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load playlist")
	}
	return p, nil
}

// AddVideo appends a video; adding the same video twice is rejected.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, callerID string) (*entity.Playlist, error) {
	if !validID(videoID) {
		return nil, apperr.New(apperr.Validation, "invalid video id")
	}
	if _, err := s.ownedPlaylist(ctx, playlistID, callerID); err != nil {
		return nil, err
	}
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "video not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load video")
	}
	if err := s.Playlists.AddVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.New(apperr.Validation, "video already in playlist")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not add video to playlist")
	}
	return s.reload(ctx, playlistID)
}

// RemoveVideo drops a video from the playlist.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, callerID string) (*entity.Playlist, error) {
	if !validID(videoID) {
		return nil, apperr.New(apperr.Validation, "invalid video id")
	}
	if _, err := s.ownedPlaylist(ctx, playlistID, callerID); err != nil {
		return nil, err
	}
	if err := s.Playlists.RemoveVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "video not in playlist")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not remove video from playlist")
	}
	return s.reload(ctx, playlistID)
}

// UpdateMeta renames the playlist and/or changes its description.
func (s *PlaylistService) UpdateMeta(ctx context.Context, playlistID, callerID, name, description string) (*entity.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.Validation, "name is required")
	}
	if _, err := s.ownedPlaylist(ctx, playlistID, callerID); err != nil {
		return nil, err
	}
	p, err := s.Playlists.UpdateMeta(ctx, playlistID, name, description)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not update playlist")
	}
	return p, nil
}

// Delete removes the playlist and its memberships.
func (s *PlaylistService) Delete(ctx context.Context, playlistID, callerID string) error {
	if _, err := s.ownedPlaylist(ctx, playlistID, callerID); err != nil {
		return err
	}
	if err := s.Playlists.Delete(ctx, playlistID); err != nil {
		return apperr.Wrap(err, apperr.Internal, "could not delete playlist")
	}
	return nil
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, playlistID, callerID string) (*entity.Playlist, error) {
	if !validID(playlistID) {
		return nil, apperr.New(apperr.Validation, "invalid playlist id")
	}
	p, err := s.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "playlist not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load playlist")
	}
	if p.OwnerID != callerID {
		return nil, apperr.New(apperr.Forbidden, "you are not the owner of this playlist")
	}
	return p, nil
}

func (s *PlaylistService) reload(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	p, err := s.Playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not reload playlist")
	}
	return p, nil
}
