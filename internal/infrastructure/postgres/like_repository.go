package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
)

type LikeRepository struct {
	pool *pgxpool.Pool
}

func NewLikeRepository(pool *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{pool: pool}
}

func (r *LikeRepository) Create(ctx context.Context, l *entity.Like) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO likes (liked_by, video_id, comment_id, tweet_id)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		RETURNING id, created_at
	`, l.LikedBy, l.VideoID, l.CommentID, l.TweetID)
	if err := row.Scan(&l.ID, &l.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM likes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LikeRepository) find(ctx context.Context, column, likedBy, targetID string) (*entity.Like, error) {
	l := &entity.Like{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, liked_by, COALESCE(video_id::text, ''), COALESCE(comment_id::text, ''),
		       COALESCE(tweet_id::text, ''), created_at
		FROM likes
		WHERE liked_by = $1 AND `+column+` = $2
	`, likedBy, targetID)
	if err := row.Scan(&l.ID, &l.LikedBy, &l.VideoID, &l.CommentID, &l.TweetID, &l.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *LikeRepository) FindByVideo(ctx context.Context, likedBy, videoID string) (*entity.Like, error) {
	return r.find(ctx, "video_id", likedBy, videoID)
}

func (r *LikeRepository) FindByComment(ctx context.Context, likedBy, commentID string) (*entity.Like, error) {
	return r.find(ctx, "comment_id", likedBy, commentID)
}

func (r *LikeRepository) FindByTweet(ctx context.Context, likedBy, tweetID string) (*entity.Like, error) {
	return r.find(ctx, "tweet_id", likedBy, tweetID)
}

func (r *LikeRepository) LikedVideos(ctx context.Context, likedBy string) ([]entity.LikedVideo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url
		FROM likes l
		JOIN videos v ON v.id = l.video_id
		JOIN users o  ON o.id = v.owner_id
		WHERE l.liked_by = $1 AND l.video_id IS NOT NULL
		ORDER BY l.created_at DESC
	`, likedBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.LikedVideo{}
	for rows.Next() {
		var lv entity.LikedVideo
		if err := rows.Scan(&lv.Video.ID, &lv.Video.OwnerID, &lv.Video.Title, &lv.Video.Description,
			&lv.Video.VideoURL, &lv.Video.ThumbnailURL, &lv.Video.Duration, &lv.Video.Views,
			&lv.Video.IsPublished, &lv.Video.CreatedAt, &lv.Video.UpdatedAt,
			&lv.Owner.ID, &lv.Owner.Username, &lv.Owner.FullName, &lv.Owner.AvatarURL); err != nil {
			return nil, err
		}
		out = append(out, lv)
	}
	return out, rows.Err()
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
