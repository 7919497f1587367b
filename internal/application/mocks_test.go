package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) UpdateRefreshToken(ctx context.Context, id, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *mockUserRepo) ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *mockUserRepo) WatchHistory(ctx context.Context, userID string) ([]entity.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WatchHistoryEntry), args.Error(1)
}

func (m *mockUserRepo) AddWatchHistory(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) Find(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	args := m.Called(ctx, subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) SubscribersOf(ctx context.Context, channelID string) ([]entity.OwnerInfo, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OwnerInfo), args.Error(1)
}

func (m *mockSubscriptionRepo) ChannelsOf(ctx context.Context, subscriberID string) ([]entity.OwnerInfo, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OwnerInfo), args.Error(1)
}

func (m *mockSubscriptionRepo) SubscriberEmails(ctx context.Context, channelID string) ([]string, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockVideoRepo struct {
	mock.Mock
}

func (m *mockVideoRepo) Create(ctx context.Context, v *entity.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVideoRepo) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *mockVideoRepo) Update(ctx context.Context, v *entity.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVideoRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVideoRepo) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVideoRepo) List(ctx context.Context, p repository.ListVideosParams) ([]entity.VideoWithOwner, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.VideoWithOwner), args.Get(1).(int64), args.Error(2)
}

func (m *mockVideoRepo) ListByIDs(ctx context.Context, ids []string) ([]entity.VideoWithOwner, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoWithOwner), args.Error(1)
}

func (m *mockVideoRepo) Details(ctx context.Context, id string) (*entity.VideoDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoDetails), args.Error(1)
}

type mockPlaylistRepo struct {
	mock.Mock
}

func (m *mockPlaylistRepo) Create(ctx context.Context, p *entity.Playlist) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPlaylistRepo) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) UpdateMeta(ctx context.Context, id, name, description string) (*entity.Playlist, error) {
	args := m.Called(ctx, id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *mockPlaylistRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID string) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

func (m *mockPlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

func (m *mockPlaylistRepo) GetPopulated(ctx context.Context, id string) (*entity.PopulatedPlaylist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PopulatedPlaylist), args.Error(1)
}

func (m *mockPlaylistRepo) ListByOwner(ctx context.Context, ownerID string) ([]entity.PopulatedPlaylist, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PopulatedPlaylist), args.Error(1)
}

var (
	_ repository.UserRepository         = (*mockUserRepo)(nil)
	_ repository.SubscriptionRepository = (*mockSubscriptionRepo)(nil)
	_ repository.VideoRepository        = (*mockVideoRepo)(nil)
	_ repository.PlaylistRepository     = (*mockPlaylistRepo)(nil)
)
