package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) ChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error) {
	s := &entity.ChannelStats{}
	row := r.pool.QueryRow(ctx, `
		SELECT u.id, u.username, u.full_name, u.avatar_url,
		       (SELECT count(*) FROM subscriptions sub WHERE sub.channel_id = u.id),
		       (SELECT count(*) FROM videos v WHERE v.owner_id = u.id),
		       (SELECT COALESCE(sum(v.views), 0) FROM videos v WHERE v.owner_id = u.id),
		       (SELECT count(*) FROM likes l JOIN videos v ON v.id = l.video_id WHERE v.owner_id = u.id),
		       (SELECT count(*) FROM comments c JOIN videos v ON v.id = c.video_id WHERE v.owner_id = u.id)
		FROM users u
		WHERE u.id = $1
	`, channelID)
	if err := row.Scan(&s.ChannelID, &s.Username, &s.FullName, &s.AvatarURL,
		&s.TotalSubscribers, &s.TotalVideos, &s.TotalViews, &s.TotalLikes, &s.TotalComments); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	top, err := scanVideo(r.pool.QueryRow(ctx, `
		SELECT `+videoColumns+` FROM videos WHERE owner_id = $1 ORDER BY views DESC LIMIT 1
	`, channelID))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	s.HighestViewed = top
	return s, nil
}

func (r *StatsRepository) ChannelVideos(ctx context.Context, channelID string) ([]entity.ChannelVideo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       (SELECT count(*) FROM likes l WHERE l.video_id = v.id),
		       (SELECT count(*) FROM comments c WHERE c.video_id = v.id)
		FROM videos v
		WHERE v.owner_id = $1
		ORDER BY v.created_at DESC
	`, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.ChannelVideo{}
	for rows.Next() {
		var v entity.ChannelVideo
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&v.TotalLikes, &v.TotalComments); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

var _ repository.StatsRepository = (*StatsRepository)(nil)
