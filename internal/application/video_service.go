package application

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/internal/infrastructure/search"
	"github.com/videotube/backend/pkg/apperr"
	"github.com/videotube/backend/pkg/helpers"
	"github.com/videotube/backend/pkg/notify"
)

// VideoService owns the video lifecycle: upload to object storage, metadata
// persistence, full-text search via the index, and notify fan-out on publish.
type VideoService struct {
	Videos    repository.VideoRepository
	Users     repository.UserRepository
	Index     *search.VideoIndex
	Notify    *helpers.RabbitPublisher
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewVideoService(videos repository.VideoRepository, users repository.UserRepository, index *search.VideoIndex, pub *helpers.RabbitPublisher, gcs *storage.Client, bucket string, logger *logrus.Logger) *VideoService {
	return &VideoService{Videos: videos, Users: users, Index: index, Notify: pub, GCS: gcs, GCSBucket: bucket, Logger: logger}
}

// VideoPage is the pagination envelope for listings.
type VideoPage struct {
	Docs        []entity.VideoWithOwner `json:"docs"`
	TotalDocs   int64                   `json:"totalDocs"`
	Page        int                     `json:"page"`
	Limit       int                     `json:"limit"`
	TotalPages  int64                   `json:"totalPages"`
	HasNextPage bool                    `json:"hasNextPage"`
	HasPrevPage bool                    `json:"hasPrevPage"`
}

// List returns a page of published videos. Free-text queries go through the
// search index when configured; otherwise the datastore matches directly.
func (s *VideoService) List(ctx context.Context, p repository.ListVideosParams) (*VideoPage, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 50 {
		p.Limit = 10
	}
	if p.OwnerID != "" && !validID(p.OwnerID) {
		return nil, apperr.New(apperr.Validation, "invalid user id")
	}

	var (
		docs  []entity.VideoWithOwner
		total int64
		err   error
	)
	if p.Query != "" && s.Index.Enabled() {
		var ids []string
		ids, total, err = s.Index.SearchIDs(ctx, p.Query, p.Page, p.Limit)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).Warn("search unavailable, falling back to sql")
			}
			docs, total, err = s.Videos.List(ctx, p)
		} else if len(ids) > 0 {
			docs, err = s.Videos.ListByIDs(ctx, ids)
		}
	} else {
		docs, total, err = s.Videos.List(ctx, p)
	}
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not list videos")
	}
	return newVideoPage(docs, total, p.Page, p.Limit), nil
}

func newVideoPage(docs []entity.VideoWithOwner, total int64, page, limit int) *VideoPage {
	if docs == nil {
		docs = []entity.VideoWithOwner{}
	}
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return &VideoPage{
		Docs:        docs,
		TotalDocs:   total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: int64(page) < totalPages,
		HasPrevPage: page > 1 && int64(page-1) <= totalPages,
	}
}

type PublishInput struct {
	Title       string
	Description string
	Duration    float64
	VideoFile   *FileUpload
	Thumbnail   *FileUpload
}

// Publish uploads the media pair, persists the metadata, indexes it, and
// fires a notify job for the channel's subscribers.
func (s *VideoService) Publish(ctx context.Context, ownerID string, in PublishInput) (*entity.Video, error) {
	if in.VideoFile == nil {
		return nil, apperr.New(apperr.Validation, "video file is required")
	}
	if in.Thumbnail == nil {
		return nil, apperr.New(apperr.Validation, "thumbnail file is required")
	}

	videoURL, err := s.uploadMedia(ctx, "videos", ownerID, in.VideoFile)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "video upload failed")
	}
	thumbURL, err := s.uploadMedia(ctx, "thumbnails", ownerID, in.Thumbnail)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "thumbnail upload failed")
	}

	v := &entity.Video{
		OwnerID:      ownerID,
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbURL,
		Duration:     in.Duration,
		IsPublished:  true,
	}
	if err := s.Videos.Create(ctx, v); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not save video")
	}

	_ = s.Index.IndexVideo(ctx, v)
	s.notifySubscribers(ctx, v)
	return v, nil
}

// Details returns the watch-page aggregate, bumps the view counter, and
// records the viewer's watch history.
func (s *VideoService) Details(ctx context.Context, videoID, viewerID string) (*entity.VideoDetails, error) {
	if !validID(videoID) {
		return nil, apperr.New(apperr.Validation, "invalid video id")
	}
	if err := s.Videos.IncrementViews(ctx, videoID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Wrap(err, apperr.Internal, "could not update views")
	}
	d, err := s.Videos.Details(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "video not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load video")
	}
	if viewerID != "" {
		if err := s.Users.AddWatchHistory(ctx, viewerID, videoID); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("video_id", videoID).Warn("watch history write failed")
		}
	}
	return d, nil
}

type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   *FileUpload
}

// Update edits title/description and optionally replaces the thumbnail.
// Only the owner may edit.
func (s *VideoService) Update(ctx context.Context, videoID, callerID string, in UpdateVideoInput) (*entity.Video, error) {
	v, err := s.ownedVideo(ctx, videoID, callerID)
	if err != nil {
		return nil, err
	}
	if in.Title != "" {
		v.Title = strings.TrimSpace(in.Title)
	}
	if in.Description != "" {
		v.Description = in.Description
	}
	if in.Thumbnail != nil {
		url, err := s.uploadMedia(ctx, "thumbnails", callerID, in.Thumbnail)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.Internal, "thumbnail upload failed")
		}
		s.deleteMediaBestEffort(ctx, v.ThumbnailURL)
		v.ThumbnailURL = url
	}
	if err := s.Videos.Update(ctx, v); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not update video")
	}
	_ = s.Index.IndexVideo(ctx, v)
	return v, nil
}

// Delete removes the metadata, then the media objects and index entry
// best-effort.
func (s *VideoService) Delete(ctx context.Context, videoID, callerID string) error {
	v, err := s.ownedVideo(ctx, videoID, callerID)
	if err != nil {
		return err
	}
	if err := s.Videos.Delete(ctx, v.ID); err != nil {
		return apperr.Wrap(err, apperr.Internal, "could not delete video")
	}
	s.deleteMediaBestEffort(ctx, v.VideoURL)
	s.deleteMediaBestEffort(ctx, v.ThumbnailURL)
	_ = s.Index.DeleteVideo(ctx, v.ID)
	return nil
}

// TogglePublish flips visibility; unpublished videos drop out of listings
// and search.
func (s *VideoService) TogglePublish(ctx context.Context, videoID, callerID string) (*entity.Video, error) {
	v, err := s.ownedVideo(ctx, videoID, callerID)
	if err != nil {
		return nil, err
	}
	v.IsPublished = !v.IsPublished
	if err := s.Videos.Update(ctx, v); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not update video")
	}
	_ = s.Index.IndexVideo(ctx, v)
	return v, nil
}

func (s *VideoService) ownedVideo(ctx context.Context, videoID, callerID string) (*entity.Video, error) {
	if !validID(videoID) {
		return nil, apperr.New(apperr.Validation, "invalid video id")
	}
	v, err := s.Videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "video not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load video")
	}
	if v.OwnerID != callerID {
		return nil, apperr.New(apperr.Forbidden, "you are not the owner of this video")
	}
	return v, nil
}

func (s *VideoService) uploadMedia(ctx context.Context, prefix, ownerID string, f *FileUpload) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(f.Filename))
	objectPath := filepath.ToSlash(filepath.Join(prefix, ownerID, uuid.NewString()+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, f.ContentType, f.Reader)
}

func (s *VideoService) deleteMediaBestEffort(ctx context.Context, url string) {
	if s.GCS == nil || url == "" {
		return
	}
	objectPath := helpers.ObjectPathFromURL(s.GCSBucket, url)
	if objectPath == "" {
		return
	}
	if err := helpers.DeleteObject(ctx, s.GCS, s.GCSBucket, objectPath); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("object", objectPath).Warn("gcs delete failed")
	}
}

// notifySubscribers is fire-and-forget; a broken broker never fails an
// upload.
func (s *VideoService) notifySubscribers(ctx context.Context, v *entity.Video) {
	if s.Notify == nil {
		return
	}
	channelName := ""
	if owner, err := s.Users.GetByID(ctx, v.OwnerID); err == nil {
		channelName = owner.Username
	}
	job := notify.Job{
		Type:        notify.VideoPublished,
		ChannelID:   v.OwnerID,
		ChannelName: channelName,
		VideoID:     v.ID,
		VideoTitle:  v.Title,
	}
	if err := s.Notify.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("video_id", v.ID).Warn("notify publish failed")
	}
}
