package entity

import "time"

// User is the principal: the registered account that owns channels, videos,
// tweets and playlists. Password holds the bcrypt hash; RefreshToken is the
// single currently-valid refresh token (empty when logged out).
type User struct {
	ID            string
	Username      string // unique, lowercase, trimmed
	Email         string // unique
	FullName      string
	AvatarURL     string
	CoverImageURL string
	Password      string
	RefreshToken  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PublicUser is the principal without credential fields; everything that
// leaves the process uses this shape.
type PublicUser struct {
	ID            string    `json:"_id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AvatarURL     string    `json:"avatar"`
	CoverImageURL string    `json:"coverImage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Public strips password and refresh token.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// ChannelProfile is a channel page: the owner's public profile plus
// subscription aggregates computed by the datastore.
type ChannelProfile struct {
	PublicUser
	SubscriberCount      int64 `json:"subscribersCount"`
	ChannelsSubscribedTo int64 `json:"channelsSubscribedToCount"`
	IsSubscribed         bool  `json:"isSubscribed"`
}
