package application

import (
	"context"
	"errors"
	"strings"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
)

// CommentService handles comments on videos; edits and deletes are limited
// to the comment's author.
type CommentService struct {
	Comments repository.CommentRepository
	Videos   repository.VideoRepository
}

func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository) *CommentService {
	return &CommentService{Comments: comments, Videos: videos}
}

// ListByVideo returns a page of comments with commenter snippets and like
// counts.
func (s *CommentService) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]entity.CommentWithMeta, error) {
	if !validID(videoID) {
		return nil, apperr.New(apperr.Validation, "invalid video id")
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "video not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load video")
	}
	out, err := s.Comments.ListByVideo(ctx, videoID, page, limit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not list comments")
	}
	return out, nil
}

// Add posts a comment on an existing video.
func (s *CommentService) Add(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error) {
	if !validID(videoID) {
		return nil, apperr.New(apperr.Validation, "invalid video id")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.Validation, "content is required")
	}
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "video not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load video")
	}
	c := &entity.Comment{VideoID: videoID, OwnerID: ownerID, Content: content}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not create comment")
	}
	return c, nil
}

// Update replaces the comment body; author only.
func (s *CommentService) Update(ctx context.Context, commentID, callerID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.Validation, "content is required")
	}
	if _, err := s.ownedComment(ctx, commentID, callerID); err != nil {
		return nil, err
	}
	c, err := s.Comments.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not update comment")
	}
	return c, nil
}

// Delete removes the comment; author only.
func (s *CommentService) Delete(ctx context.Context, commentID, callerID string) error {
	if _, err := s.ownedComment(ctx, commentID, callerID); err != nil {
		return err
	}
	if err := s.Comments.Delete(ctx, commentID); err != nil {
		return apperr.Wrap(err, apperr.Internal, "could not delete comment")
	}
	return nil
}

func (s *CommentService) ownedComment(ctx context.Context, commentID, callerID string) (*entity.Comment, error) {
	if !validID(commentID) {
		return nil, apperr.New(apperr.Validation, "invalid comment id")
	}
	c, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "comment not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load comment")
	}
	if c.OwnerID != callerID {
		return nil, apperr.New(apperr.Forbidden, "you are not the owner of this comment")
	}
	return c, nil
}
