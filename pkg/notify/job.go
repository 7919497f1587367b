package notify

// Event types put on the notification queue.
const (
	VideoPublished = "video_published"
	NewSubscriber  = "new_subscriber"
)

// Job is the JSON payload published to RabbitMQ when something happened that
// subscribers may want to hear about. The worker resolves recipients and
// sends emails; the API never waits on that.
type Job struct {
	Type         string `json:"type"`
	ChannelID    string `json:"channelId"`
	ChannelName  string `json:"channelName,omitempty"`
	VideoID      string `json:"videoId,omitempty"`
	VideoTitle   string `json:"videoTitle,omitempty"`
	SubscriberID string `json:"subscriberId,omitempty"`
}
