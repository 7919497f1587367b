package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
)

type TweetRepository struct {
	pool *pgxpool.Pool
}

func NewTweetRepository(pool *pgxpool.Pool) *TweetRepository {
	return &TweetRepository{pool: pool}
}

func scanTweet(row pgx.Row) (*entity.Tweet, error) {
	t := &entity.Tweet{}
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TweetRepository) Create(ctx context.Context, t *entity.Tweet) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tweets (owner_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, t.OwnerID, t.Content)
	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TweetRepository) GetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	return scanTweet(r.pool.QueryRow(ctx, `
		SELECT id, owner_id, content, created_at, updated_at FROM tweets WHERE id = $1
	`, id))
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id, content string) (*entity.Tweet, error) {
	return scanTweet(r.pool.QueryRow(ctx, `
		UPDATE tweets SET content = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, content, created_at, updated_at
	`, id, content))
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.TweetWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.owner_id, t.content, t.created_at, t.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url
		FROM tweets t
		JOIN users o ON o.id = t.owner_id
		WHERE t.owner_id = $1
		ORDER BY t.created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.TweetWithOwner{}
	for rows.Next() {
		var t entity.TweetWithOwner
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt,
			&t.Owner.ID, &t.Owner.Username, &t.Owner.FullName, &t.Owner.AvatarURL); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

var _ repository.TweetRepository = (*TweetRepository)(nil)
