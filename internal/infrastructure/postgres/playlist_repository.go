package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
)

type PlaylistRepository struct {
	pool *pgxpool.Pool
}

func NewPlaylistRepository(pool *pgxpool.Pool) *PlaylistRepository {
	return &PlaylistRepository{pool: pool}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *entity.Playlist) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO playlists (owner_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.OwnerID, p.Name, p.Description)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	if p.VideoIDs == nil {
		p.VideoIDs = []string{}
	}
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	p := &entity.Playlist{}
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at,
		       COALESCE(array_agg(pv.video_id::text ORDER BY pv.added_at)
		                FILTER (WHERE pv.video_id IS NOT NULL), '{}')
		FROM playlists p
		LEFT JOIN playlist_videos pv ON pv.playlist_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`, id)
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt, &p.VideoIDs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlaylistRepository) UpdateMeta(ctx context.Context, id, name, description string) (*entity.Playlist, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE playlists SET name = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, name, description, created_at, updated_at
	`, id, name, description)
	p := &entity.Playlist{VideoIDs: []string{}}
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO playlist_videos (playlist_id, video_id) VALUES ($1, $2)
	`, playlistID, videoID)
	return translate(err)
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2
	`, playlistID, videoID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaylistRepository) GetPopulated(ctx context.Context, id string) (*entity.PopulatedPlaylist, error) {
	p := &entity.PopulatedPlaylist{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	videos, err := r.playlistVideos(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Videos = videos
	return p, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.PopulatedPlaylist, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.PopulatedPlaylist{}
	for rows.Next() {
		var p entity.PopulatedPlaylist
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		videos, err := r.playlistVideos(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Videos = videos
	}
	return out, nil
}

func (r *PlaylistRepository) playlistVideos(ctx context.Context, playlistID string) ([]entity.Video, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.added_at
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Video{}
	for rows.Next() {
		var v entity.Video
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
