package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	c := &entity.Comment{}
	if err := row.Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (video_id, owner_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.VideoID, c.OwnerID, c.Content)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx, `
		SELECT id, video_id, owner_id, content, created_at, updated_at FROM comments WHERE id = $1
	`, id))
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*entity.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx, `
		UPDATE comments SET content = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, video_id, owner_id, content, created_at, updated_at
	`, id, content))
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]entity.CommentWithMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.video_id, c.owner_id, c.content, c.created_at, c.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url,
		       (SELECT count(*) FROM likes l WHERE l.comment_id = c.id) AS total_likes
		FROM comments c
		JOIN users o ON o.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`, videoID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.CommentWithMeta{}
	for rows.Next() {
		var c entity.CommentWithMeta
		if err := rows.Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
			&c.Commenter.ID, &c.Commenter.Username, &c.Commenter.FullName, &c.Commenter.AvatarURL,
			&c.TotalLikes); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
