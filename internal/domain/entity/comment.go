package entity

import "time"

// Comment belongs to a video.
type Comment struct {
	ID        string    `json:"_id"`
	VideoID   string    `json:"video"`
	OwnerID   string    `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentWithMeta is the listing row: the comment, its author snippet, and
// the like count aggregated by the datastore.
type CommentWithMeta struct {
	Comment
	Commenter  OwnerInfo `json:"commenter"`
	TotalLikes int64     `json:"totalLikes"`
}
