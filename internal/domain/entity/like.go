package entity

import "time"

// Like marks exactly one of VideoID, CommentID, TweetID; the other two are
// empty. Uniqueness per (liker, target) is enforced by the datastore.
type Like struct {
	ID        string    `json:"_id"`
	LikedBy   string    `json:"likedBy"`
	VideoID   string    `json:"video,omitempty"`
	CommentID string    `json:"comment,omitempty"`
	TweetID   string    `json:"tweet,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedVideo is a liked-videos listing row.
type LikedVideo struct {
	Video Video     `json:"videoDetails"`
	Owner OwnerInfo `json:"ownerInfo"`
}
