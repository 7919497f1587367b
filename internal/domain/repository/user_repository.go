package repository

import (
	"context"

	"github.com/videotube/backend/internal/domain/entity"
)

// UserRepository defines user persistence. The refresh token lives on the
// user row; UpdateRefreshToken is the single write both login and refresh
// perform (an empty token clears the slot on logout).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetByIdentifier resolves a login identifier that may be a username or
	// an email.
	GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Update(ctx context.Context, u *entity.User) error
	UpdateRefreshToken(ctx context.Context, id, token string) error

	// Aggregations.
	ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID string) ([]entity.WatchHistoryEntry, error)
	AddWatchHistory(ctx context.Context, userID, videoID string) error
}
