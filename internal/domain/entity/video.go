package entity

import "time"

// Video is a published (or draft) upload's metadata; the media itself lives
// in object storage, referenced by URL.
type Video struct {
	ID           string    `json:"_id"`
	OwnerID      string    `json:"owner"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoFile"`
	ThumbnailURL string    `json:"thumbnail"`
	Duration     float64   `json:"duration"` // seconds
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OwnerInfo is the slim owner projection joined into listings.
type OwnerInfo struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatar"`
}

// VideoWithOwner is a listing row: the video plus its joined owner snippet.
type VideoWithOwner struct {
	Video
	Owner OwnerInfo `json:"ownerInfo"`
}

// VideoDetails is the watch-page shape: joined owner and like count.
type VideoDetails struct {
	Video
	Owner      OwnerInfo `json:"ownerInfo"`
	TotalLikes int64     `json:"totalLikes"`
}

// WatchHistoryEntry is a previously viewed video with its owner snippet.
type WatchHistoryEntry struct {
	Video     Video     `json:"video"`
	Owner     OwnerInfo `json:"owner"`
	WatchedAt time.Time `json:"watchedAt"`
}
