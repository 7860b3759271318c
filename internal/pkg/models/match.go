package models

import "time"

// MatchCandidate is one ranked match card for a source intent
type MatchCandidate struct {
	IntentID          string    `json:"intent_id"`
	UserID            string    `json:"user_id"`
	Name              *string   `json:"name,omitempty"`
	AvatarURL         *string   `json:"avatar_url,omitempty"`
	HasVehicle        bool      `json:"has_vehicle"`
	Origin            Point     `json:"origin"`
	Destination       Point     `json:"destination"`
	RouteOverlapScore float64   `json:"route_overlap_score"`
	PastRatingAvg     *float64  `json:"past_rating_avg"`
	BuddyScore        float64   `json:"buddy_score"`
	SameStop          bool      `json:"same_stop"`
	CreatedAt         time.Time `json:"created_at"`

	// ScoreFixed marks cards whose buddy score was set by the matcher
	ScoreFixed bool `json:"-"`
}

// CandidateRow is a raw candidate as read from storage, before scoring
type CandidateRow struct {
	IntentID   string    `db:"id"`
	UserID     string    `db:"user_id"`
	Name       *string   `db:"name"`
	AvatarURL  *string   `db:"avatar_url"`
	HasVehicle bool      `db:"has_vehicle"`
	OriginLat  float64   `db:"origin_lat"`
	OriginLng  float64   `db:"origin_lng"`
	DestLat    float64   `db:"dest_lat"`
	DestLng    float64   `db:"dest_lng"`
	CreatedAt  time.Time `db:"created_at"`
}

// CandidateQuery is the predicate set for the candidate pool query
type CandidateQuery struct {
	SourceIntentID string
	SourceUserID   string
	Now            time.Time
	MinLat         float64
	MaxLat         float64
	MinLng         float64
	MaxLng         float64
	Center         Point   // exact radius is measured from here
	RadiusM        float64 // applied before the recency cap
	WindowStart    *time.Time
	WindowEnd      *time.Time
	WalkersOnly    bool
	CreatedAfter   *time.Time
	Limit          int
}
