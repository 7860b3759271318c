package models

import "time"

// Rating is a post-session score given by one party to the other
type Rating struct {
	ID        string    `json:"id" db:"id"`
	RaterID   string    `json:"rater_id" db:"rater_id"`
	RateeID   string    `json:"ratee_id" db:"ratee_id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Score     int       `json:"score" db:"score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RateSessionRequest is the request body for rating a session
type RateSessionRequest struct {
	Score int `json:"score"`
}
