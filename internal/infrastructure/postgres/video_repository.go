package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
)

const videoColumns = `id, owner_id, title, description, video_url, thumbnail_url, duration, views, is_published, created_at, updated_at`

// sortColumns whitelists listing sort keys; anything else falls back to
// creation time.
var sortColumns = map[string]string{
	"createdAt": "v.created_at",
	"views":     "v.views",
	"duration":  "v.duration",
	"title":     "v.title",
}

type VideoRepository struct {
	pool *pgxpool.Pool
}

func NewVideoRepository(pool *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{pool: pool}
}

func scanVideo(row pgx.Row) (*entity.Video, error) {
	v := &entity.Video{}
	if err := row.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
		&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *VideoRepository) Create(ctx context.Context, v *entity.Video) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO videos (owner_id, title, description, video_url, thumbnail_url, duration, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, views, created_at, updated_at
	`, v.OwnerID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.Duration, v.IsPublished)
	return row.Scan(&v.ID, &v.Views, &v.CreatedAt, &v.UpdatedAt)
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	return scanVideo(r.pool.QueryRow(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
}

func (r *VideoRepository) Update(ctx context.Context, v *entity.Video) error {
	v.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE videos
		SET title = $1, description = $2, thumbnail_url = $3, is_published = $4, updated_at = $5
		WHERE id = $6
	`, v.Title, v.Description, v.ThumbnailURL, v.IsPublished, v.UpdatedAt, v.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *VideoRepository) List(ctx context.Context, p repository.ListVideosParams) ([]entity.VideoWithOwner, int64, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > 100 {
		p.Limit = 10
	}
	sortCol, ok := sortColumns[p.SortBy]
	if !ok {
		sortCol = "v.created_at"
	}
	dir := "ASC"
	if p.SortDesc {
		dir = "DESC"
	}

	where := `v.is_published = TRUE`
	args := []any{}
	if p.OwnerID != "" {
		args = append(args, p.OwnerID)
		where += fmt.Sprintf(" AND v.owner_id = $%d", len(args))
	}
	if p.Query != "" {
		args = append(args, "%"+p.Query+"%")
		where += fmt.Sprintf(" AND v.title ILIKE $%d", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM videos v WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, p.Limit, (p.Page-1)*p.Limit)
	query := fmt.Sprintf(`
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url
		FROM videos v
		JOIN users o ON o.id = v.owner_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, where, sortCol, dir, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectVideosWithOwner(rows)
	return out, total, err
}

// ListByIDs preserves the order of ids, which carries the search ranking.
func (r *VideoRepository) ListByIDs(ctx context.Context, ids []string) ([]entity.VideoWithOwner, error) {
	if len(ids) == 0 {
		return []entity.VideoWithOwner{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url
		FROM videos v
		JOIN users o ON o.id = v.owner_id
		WHERE v.id = ANY($1::uuid[]) AND v.is_published = TRUE
		ORDER BY array_position($1::uuid[], v.id)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVideosWithOwner(rows)
}

func (r *VideoRepository) Details(ctx context.Context, id string) (*entity.VideoDetails, error) {
	d := &entity.VideoDetails{}
	row := r.pool.QueryRow(ctx, `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       o.id, o.username, o.full_name, o.avatar_url,
		       (SELECT count(*) FROM likes l WHERE l.video_id = v.id) AS total_likes
		FROM videos v
		JOIN users o ON o.id = v.owner_id
		WHERE v.id = $1
	`, id)
	if err := row.Scan(&d.ID, &d.OwnerID, &d.Title, &d.Description, &d.VideoURL, &d.ThumbnailURL,
		&d.Duration, &d.Views, &d.IsPublished, &d.CreatedAt, &d.UpdatedAt,
		&d.Owner.ID, &d.Owner.Username, &d.Owner.FullName, &d.Owner.AvatarURL,
		&d.TotalLikes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func collectVideosWithOwner(rows pgx.Rows) ([]entity.VideoWithOwner, error) {
	out := []entity.VideoWithOwner{}
	for rows.Next() {
		var v entity.VideoWithOwner
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt,
			&v.Owner.ID, &v.Owner.Username, &v.Owner.FullName, &v.Owner.AvatarURL); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

var _ repository.VideoRepository = (*VideoRepository)(nil)
