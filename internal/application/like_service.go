package application

import (
	"context"
	"errors"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
)

// LikeService toggles likes on videos, comments and tweets.
type LikeService struct {
	Likes    repository.LikeRepository
	Videos   repository.VideoRepository
	Comments repository.CommentRepository
	Tweets   repository.TweetRepository
}

func NewLikeService(likes repository.LikeRepository, videos repository.VideoRepository, comments repository.CommentRepository, tweets repository.TweetRepository) *LikeService {
	return &LikeService{Likes: likes, Videos: videos, Comments: comments, Tweets: tweets}
}

// ToggleState reports the post-toggle state.
type ToggleState struct {
	Liked bool `json:"liked"`
}

func (s *LikeService) ToggleVideo(ctx context.Context, callerID, videoID string) (*ToggleState, error) {
	if !validID(videoID) {
		return nil, apperr.New(apperr.Validation, "invalid video id")
	}
	if _, err := s.Videos.GetByID(ctx, videoID); err != nil {
		return nil, targetErr(err, "video")
	}
	return s.toggle(ctx,
		func() (*entity.Like, error) { return s.Likes.FindByVideo(ctx, callerID, videoID) },
		&entity.Like{LikedBy: callerID, VideoID: videoID})
}

func (s *LikeService) ToggleComment(ctx context.Context, callerID, commentID string) (*ToggleState, error) {
	if !validID(commentID) {
		return nil, apperr.New(apperr.Validation, "invalid comment id")
	}
	if _, err := s.Comments.GetByID(ctx, commentID); err != nil {
		return nil, targetErr(err, "comment")
	}
	return s.toggle(ctx,
		func() (*entity.Like, error) { return s.Likes.FindByComment(ctx, callerID, commentID) },
		&entity.Like{LikedBy: callerID, CommentID: commentID})
}

func (s *LikeService) ToggleTweet(ctx context.Context, callerID, tweetID string) (*ToggleState, error) {
	if !validID(tweetID) {
		return nil, apperr.New(apperr.Validation, "invalid tweet id")
	}
	if _, err := s.Tweets.GetByID(ctx, tweetID); err != nil {
		return nil, targetErr(err, "tweet")
	}
	return s.toggle(ctx,
		func() (*entity.Like, error) { return s.Likes.FindByTweet(ctx, callerID, tweetID) },
		&entity.Like{LikedBy: callerID, TweetID: tweetID})
}

// LikedVideos lists the caller's liked videos with owner snippets.
func (s *LikeService) LikedVideos(ctx context.Context, callerID string) ([]entity.LikedVideo, error) {
	out, err := s.Likes.LikedVideos(ctx, callerID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not list liked videos")
	}
	return out, nil
}

func (s *LikeService) toggle(ctx context.Context, find func() (*entity.Like, error), fresh *entity.Like) (*ToggleState, error) {
	existing, err := find()
	switch {
	case err == nil:
		if err := s.Likes.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Wrap(err, apperr.Internal, "could not remove like")
		}
		return &ToggleState{Liked: false}, nil
	case errors.Is(err, repository.ErrNotFound):
		if err := s.Likes.Create(ctx, fresh); err != nil {
			// Raced double-like: someone else's insert won, treat as liked.
			if errors.Is(err, repository.ErrDuplicate) {
				return &ToggleState{Liked: true}, nil
			}
			return nil, apperr.Wrap(err, apperr.Internal, "could not create like")
		}
		return &ToggleState{Liked: true}, nil
	default:
		return nil, apperr.Wrap(err, apperr.Internal, "could not check like")
	}
}

func targetErr(err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(apperr.NotFound, what+" not found")
	}
	return apperr.Wrap(err, apperr.Internal, "could not load "+what)
}
