package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
	"github.com/videotube/backend/pkg/helpers"
	"github.com/videotube/backend/pkg/notify"
)

// SubscriptionService toggles and lists channel subscriptions.
type SubscriptionService struct {
	Subs   repository.SubscriptionRepository
	Users  repository.UserRepository
	Notify *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewSubscriptionService(subs repository.SubscriptionRepository, users repository.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *SubscriptionService {
	return &SubscriptionService{Subs: subs, Users: users, Notify: pub, Logger: logger}
}

// SubscribedState reports the post-toggle state.
type SubscribedState struct {
	Subscribed bool `json:"subscribed"`
}

// Toggle subscribes or unsubscribes the caller. Subscribing to your own
// channel is rejected.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (*SubscribedState, error) {
	if !validID(channelID) {
		return nil, apperr.New(apperr.Validation, "invalid channel id")
	}
	if channelID == subscriberID {
		return nil, apperr.New(apperr.Validation, "you cannot subscribe to your own channel")
	}
	if _, err := s.Users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "channel not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load channel")
	}

	existing, err := s.Subs.Find(ctx, subscriberID, channelID)
	switch {
	case err == nil:
		if err := s.Subs.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Wrap(err, apperr.Internal, "could not unsubscribe")
		}
		return &SubscribedState{Subscribed: false}, nil
	case errors.Is(err, repository.ErrNotFound):
		sub := &entity.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
		if err := s.Subs.Create(ctx, sub); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return &SubscribedState{Subscribed: true}, nil
			}
			return nil, apperr.Wrap(err, apperr.Internal, "could not subscribe")
		}
		s.notifyChannel(ctx, channelID, subscriberID)
		return &SubscribedState{Subscribed: true}, nil
	default:
		return nil, apperr.Wrap(err, apperr.Internal, "could not check subscription")
	}
}

// Subscribers lists who subscribes to channelID.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID string) ([]entity.OwnerInfo, error) {
	if !validID(channelID) {
		return nil, apperr.New(apperr.Validation, "invalid channel id")
	}
	out, err := s.Subs.SubscribersOf(ctx, channelID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not list subscribers")
	}
	return out, nil
}

// SubscribedChannels lists the channels subscriberID follows.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID string) ([]entity.OwnerInfo, error) {
	if !validID(subscriberID) {
		return nil, apperr.New(apperr.Validation, "invalid subscriber id")
	}
	out, err := s.Subs.ChannelsOf(ctx, subscriberID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not list channels")
	}
	return out, nil
}

func (s *SubscriptionService) notifyChannel(ctx context.Context, channelID, subscriberID string) {
	if s.Notify == nil {
		return
	}
	job := notify.Job{Type: notify.NewSubscriber, ChannelID: channelID, SubscriberID: subscriberID}
	if err := s.Notify.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("channel_id", channelID).Warn("notify publish failed")
	}
}
