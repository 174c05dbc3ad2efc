package models

// Article lifecycle operations published to the event stream.
const (
	ArticleCreated = "created"
	ArticleUpdated = "updated"
	ArticleDeleted = "deleted"
)

// ArticleEvent describes a change made through the management API.
type ArticleEvent struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	Timestamp int64  `json:"timestamp"`  // Unix seconds
	ArticleID string `json:"article_id"` // Affected article
	UserID    string `json:"user_id"`    // Caller who made the change
	Operation string `json:"operation"`  // created, updated or deleted
}
