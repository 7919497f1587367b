package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
)

type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *entity.Subscription) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, s.SubscriberID, s.ChannelID)
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepository) Find(ctx context.Context, subscriberID, channelID string) (*entity.Subscription, error) {
	s := &entity.Subscription{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, subscriber_id, channel_id, created_at
		FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2
	`, subscriberID, channelID)
	if err := row.Scan(&s.ID, &s.SubscriberID, &s.ChannelID, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *SubscriptionRepository) SubscribersOf(ctx context.Context, channelID string) ([]entity.OwnerInfo, error) {
	return r.listUsers(ctx, `
		SELECT u.id, u.username, u.full_name, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
	`, channelID)
}

func (r *SubscriptionRepository) ChannelsOf(ctx context.Context, subscriberID string) ([]entity.OwnerInfo, error) {
	return r.listUsers(ctx, `
		SELECT u.id, u.username, u.full_name, u.avatar_url
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
	`, subscriberID)
}

func (r *SubscriptionRepository) SubscriberEmails(ctx context.Context, channelID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.email
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
	`, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		out = append(out, email)
	}
	return out, rows.Err()
}

func (r *SubscriptionRepository) listUsers(ctx context.Context, query string, arg any) ([]entity.OwnerInfo, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.OwnerInfo{}
	for rows.Next() {
		var u entity.OwnerInfo
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.AvatarURL); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
