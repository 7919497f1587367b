package application

import (
	"context"
	"errors"
	"strings"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
)

// TweetService handles short channel posts.
type TweetService struct {
	Tweets repository.TweetRepository
	Users  repository.UserRepository
}

func NewTweetService(tweets repository.TweetRepository, users repository.UserRepository) *TweetService {
	return &TweetService{Tweets: tweets, Users: users}
}

func (s *TweetService) Create(ctx context.Context, ownerID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.Validation, "content is required")
	}
	t := &entity.Tweet{OwnerID: ownerID, Content: content}
	if err := s.Tweets.Create(ctx, t); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not create tweet")
	}
	return t, nil
}

// ListByUser returns a user's tweets with the author snippet joined.
func (s *TweetService) ListByUser(ctx context.Context, userID string) ([]entity.TweetWithOwner, error) {
	if !validID(userID) {
		return nil, apperr.New(apperr.Validation, "invalid user id")
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load user")
	}
	out, err := s.Tweets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not list tweets")
	}
	return out, nil
}

// Update replaces the tweet body; author only.
func (s *TweetService) Update(ctx context.Context, tweetID, callerID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.Validation, "content is required")
	}
	if _, err := s.ownedTweet(ctx, tweetID, callerID); err != nil {
		return nil, err
	}
	t, err := s.Tweets.UpdateContent(ctx, tweetID, content)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not update tweet")
	}
	return t, nil
}

// Delete removes the tweet; author only.
func (s *TweetService) Delete(ctx context.Context, tweetID, callerID string) error {
	if _, err := s.ownedTweet(ctx, tweetID, callerID); err != nil {
		return err
	}
	if err := s.Tweets.Delete(ctx, tweetID); err != nil {
		return apperr.Wrap(err, apperr.Internal, "could not delete tweet")
	}
	return nil
}

func (s *TweetService) ownedTweet(ctx context.Context, tweetID, callerID string) (*entity.Tweet, error) {
	if !validID(tweetID) {
		return nil, apperr.New(apperr.Validation, "invalid tweet id")
	}
	t, err := s.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "tweet not found")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load tweet")
	}
	if t.OwnerID != callerID {
		return nil, apperr.New(apperr.Forbidden, "you are not the owner of this tweet")
	}
	return t, nil
}
