package repository

import (
	"context"

	"github.com/videotube/backend/internal/domain/entity"
)

// SubscriptionRepository defines channel subscription persistence.
type SubscriptionRepository interface {
	Create(ctx context.Context, s *entity.Subscription) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error)

	// Aggregations.
	SubscribersOf(ctx context.Context, channelID string) ([]entity.OwnerInfo, error)
	ChannelsOf(ctx context.Context, subscriberID string) ([]entity.OwnerInfo, error)
	SubscriberEmails(ctx context.Context, channelID string) ([]string, error)
}
