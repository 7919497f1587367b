package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
)

const userColumns = `id, username, email, full_name, avatar_url, cover_image_url, password_hash, refresh_token, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.AvatarURL,
		&u.CoverImageURL, &u.Password, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, full_name, avatar_url, cover_image_url, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, u.Username, u.Email, u.FullName, u.AvatarURL, u.CoverImageURL, u.Password)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $1
	`, identifier))
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)
	`, username, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, full_name = $3, avatar_url = $4,
		    cover_image_url = $5, password_hash = $6, updated_at = $7
		WHERE id = $8
	`, u.Username, u.Email, u.FullName, u.AvatarURL, u.CoverImageURL, u.Password, u.UpdatedAt, u.ID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken overwrites the single refresh-token slot. The row-level
// atomicity of this UPDATE is what makes concurrent refresh cycles safe.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, id, token string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET refresh_token = $2, updated_at = now() WHERE id = $1
	`, id, token)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	p := &entity.ChannelProfile{}
	row := r.pool.QueryRow(ctx, `
		SELECT u.id, u.username, u.email, u.full_name, u.avatar_url, u.cover_image_url,
		       u.created_at, u.updated_at,
		       (SELECT count(*) FROM subscriptions s WHERE s.channel_id = u.id)    AS subscribers,
		       (SELECT count(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS subscribed_to,
		       EXISTS (
		           SELECT 1 FROM subscriptions s
		           WHERE s.channel_id = u.id AND s.subscriber_id = $2
		       ) AS is_subscribed
		FROM users u
		WHERE u.username = $1
	`, username, viewerID)
	if err := row.Scan(&p.ID, &p.Username, &p.Email, &p.FullName, &p.AvatarURL, &p.CoverImageURL,
		&p.CreatedAt, &p.UpdatedAt, &p.SubscriberCount, &p.ChannelsSubscribedTo, &p.IsSubscribed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *UserRepository) WatchHistory(ctx context.Context, userID string) ([]entity.WatchHistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url,
		       wh.watched_at
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		JOIN users o  ON o.id = v.owner_id
		WHERE wh.user_id = $1
		ORDER BY wh.watched_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.WatchHistoryEntry{}
	for rows.Next() {
		var e entity.WatchHistoryEntry
		if err := rows.Scan(&e.Video.ID, &e.Video.OwnerID, &e.Video.Title, &e.Video.Description,
			&e.Video.VideoURL, &e.Video.ThumbnailURL, &e.Video.Duration, &e.Video.Views,
			&e.Video.IsPublished, &e.Video.CreatedAt, &e.Video.UpdatedAt,
			&e.Owner.ID, &e.Owner.Username, &e.Owner.FullName, &e.Owner.AvatarURL,
			&e.WatchedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *UserRepository) AddWatchHistory(ctx context.Context, userID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO watch_history (user_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = now()
	`, userID, videoID)
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
