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
	channelID    = "0b8f39a1-2c4d-4e5f-8a6b-7c8d9e0f1a2b"
	subscriberID = "1c9e4ab2-3d5e-4f6a-9b7c-8d9e0f1a2b3c"
)

func TestToggleSubscribesWhenAbsent(t *testing.T) {
	subs := new(mockSubscriptionRepo)
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, channelID).Return(&entity.User{ID: channelID}, nil)
	subs.On("Find", mock.Anything, subscriberID, channelID).Return(nil, repository.ErrNotFound)
	subs.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Subscription) bool {
		return s.SubscriberID == subscriberID && s.ChannelID == channelID
	})).Return(nil)

	svc := &SubscriptionService{Subs: subs, Users: users}
	state, err := svc.Toggle(context.Background(), subscriberID, channelID)
	require.NoError(t, err)

	assert.True(t, state.Subscribed)
	subs.AssertExpectations(t)
}

func TestToggleUnsubscribesWhenPresent(t *testing.T) {
	subs := new(mockSubscriptionRepo)
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, channelID).Return(&entity.User{ID: channelID}, nil)
	subs.On("Find", mock.Anything, subscriberID, channelID).
		Return(&entity.Subscription{ID: "sub-1", SubscriberID: subscriberID, ChannelID: channelID}, nil)
	subs.On("Delete", mock.Anything, "sub-1").Return(nil)

	svc := &SubscriptionService{Subs: subs, Users: users}
	state, err := svc.Toggle(context.Background(), subscriberID, channelID)
	require.NoError(t, err)

	assert.False(t, state.Subscribed)
	subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestToggleOwnChannelRejected(t *testing.T) {
	svc := &SubscriptionService{Subs: new(mockSubscriptionRepo), Users: new(mockUserRepo)}
	_, err := svc.Toggle(context.Background(), channelID, channelID)
	require.Error(t, err)

	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.EqualError(t, err, "you cannot subscribe to your own channel")
}

func TestToggleUnknownChannel(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, channelID).Return(nil, repository.ErrNotFound)

	svc := &SubscriptionService{Subs: new(mockSubscriptionRepo), Users: users}
	_, err := svc.Toggle(context.Background(), subscriberID, channelID)
	require.Error(t, err)

	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "channel not found")
}

func TestToggleInvalidChannelID(t *testing.T) {
	svc := &SubscriptionService{Subs: new(mockSubscriptionRepo), Users: new(mockUserRepo)}
	_, err := svc.Toggle(context.Background(), subscriberID, "not-a-uuid")
	require.Error(t, err)

	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestSubscribersList(t *testing.T) {
	subs := new(mockSubscriptionRepo)
	subs.On("SubscribersOf", mock.Anything, channelID).
		Return([]entity.OwnerInfo{{ID: subscriberID, Username: "bob"}}, nil)

	svc := &SubscriptionService{Subs: subs, Users: new(mockUserRepo)}
	out, err := svc.Subscribers(context.Background(), channelID)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "bob", out[0].Username)
}
