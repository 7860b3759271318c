package models

// UpdateType discriminates update notifications
type UpdateType string

const (
	UpdateTypeSessions UpdateType = "sessions"
	UpdateTypeIntents  UpdateType = "intents"
)

// UpdateEvent is a signal to re-fetch, not a data payload
type UpdateEvent struct {
	Type UpdateType `json:"type"`
}

// UpdateBroadcast carries an update event across service instances
type UpdateBroadcast struct {
	UserIDs []string    `json:"user_ids"`
	Event   UpdateEvent `json:"event"`
}
