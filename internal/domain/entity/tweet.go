package entity

import "time"

// Tweet is a short channel post.
type Tweet struct {
	ID        string    `json:"_id"`
	OwnerID   string    `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TweetWithOwner is the listing row with the author snippet joined in.
type TweetWithOwner struct {
	Tweet
	Owner OwnerInfo `json:"ownerInfo"`
}
