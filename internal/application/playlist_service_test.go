package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
)

const (
	playlistID = "2da05bc3-4e6f-4a7b-8c9d-0e1f2a3b4c5d"
	videoID    = "3eb16cd4-5f7a-4b8c-9d0e-1f2a3b4c5d6e"
	ownerID    = "4fc27de5-6a8b-4c9d-ae1f-2a3b4c5d6e7f"
	strangerID = "5ad38ef6-7b9c-4dae-bf2a-3b4c5d6e7f8a"
)

func ownedPlaylistRepo() *mockPlaylistRepo {
	playlists := new(mockPlaylistRepo)
	playlists.On("GetByID", mock.Anything, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID, Name: "watch later"}, nil)
	return playlists
}

func TestCreatePlaylistRequiresName(t *testing.T) {
	svc := &PlaylistService{Playlists: new(mockPlaylistRepo), Videos: new(mockVideoRepo)}
	_, err := svc.Create(context.Background(), ownerID, "   ", "desc")
	require.Error(t, err)

	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.EqualError(t, err, "name is required")
}

func TestAddVideoToPlaylist(t *testing.T) {
	playlists := ownedPlaylistRepo()
	videos := new(mockVideoRepo)
	videos.On("GetByID", mock.Anything, videoID).Return(&entity.Video{ID: videoID}, nil)
	playlists.On("AddVideo", mock.Anything, playlistID, videoID).Return(nil)

	svc := &PlaylistService{Playlists: playlists, Videos: videos}
	p, err := svc.AddVideo(context.Background(), playlistID, videoID, ownerID)
	require.NoError(t, err)

	assert.Equal(t, playlistID, p.ID)
	playlists.AssertExpectations(t)
}

func TestAddVideoTwiceRejected(t *testing.T) {
	playlists := ownedPlaylistRepo()
	videos := new(mockVideoRepo)
	videos.On("GetByID", mock.Anything, videoID).Return(&entity.Video{ID: videoID}, nil)
	playlists.On("AddVideo", mock.Anything, playlistID, videoID).Return(repository.ErrDuplicate)

	svc := &PlaylistService{Playlists: playlists, Videos: videos}
	_, err := svc.AddVideo(context.Background(), playlistID, videoID, ownerID)
	require.Error(t, err)

	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.EqualError(t, err, "video already in playlist")
}

func TestAddVideoNotOwner(t *testing.T) {
	playlists := ownedPlaylistRepo()

	svc := &PlaylistService{Playlists: playlists, Videos: new(mockVideoRepo)}
	_, err := svc.AddVideo(context.Background(), playlistID, videoID, strangerID)
	require.Error(t, err)

	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	assert.EqualError(t, err, "you are not the owner of this playlist")
	playlists.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveVideoNotInPlaylist(t *testing.T) {
	playlists := ownedPlaylistRepo()
	playlists.On("RemoveVideo", mock.Anything, playlistID, videoID).Return(repository.ErrNotFound)

	svc := &PlaylistService{Playlists: playlists, Videos: new(mockVideoRepo)}
	_, err := svc.RemoveVideo(context.Background(), playlistID, videoID, ownerID)
	require.Error(t, err)

	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "video not in playlist")
}

func TestDeletePlaylistUnknownID(t *testing.T) {
	playlists := new(mockPlaylistRepo)
	playlists.On("GetByID", mock.Anything, playlistID).Return(nil, repository.ErrNotFound)

	svc := &PlaylistService{Playlists: playlists, Videos: new(mockVideoRepo)}
	err := svc.Delete(context.Background(), playlistID, ownerID)
	require.Error(t, err)

	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "playlist not found")
}
