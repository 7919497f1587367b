package entity

// ChannelStats is the dashboard aggregate for one channel, computed entirely
// by the datastore's query planner.
type ChannelStats struct {
	ChannelID        string `json:"_id"`
	Username         string `json:"username"`
	FullName         string `json:"fullName"`
	AvatarURL        string `json:"avatar"`
	TotalSubscribers int64  `json:"totalSubscribers"`
	TotalVideos      int64  `json:"totalVideos"`
	TotalViews       int64  `json:"totalViews"`
	TotalLikes       int64  `json:"totalLikes"`
	TotalComments    int64  `json:"totalComments"`
	HighestViewed    *Video `json:"highestViewedVideo,omitempty"`
}

// ChannelVideo is a dashboard listing row with per-video aggregates.
type ChannelVideo struct {
	Video
	TotalLikes    int64 `json:"totalLikes"`
	TotalComments int64 `json:"totalComments"`
}
