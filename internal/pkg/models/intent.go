package models

import "time"

// Intent is a user's short-lived travel request
type Intent struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Origin      Point      `json:"origin"`
	Destination Point      `json:"destination"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	ExpiresAt   time.Time  `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IntentDTO is used for database operations to flatten the nested points
type IntentDTO struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	OriginLat float64    `db:"origin_lat"`
	OriginLng float64    `db:"origin_lng"`
	DestLat   float64    `db:"dest_lat"`
	DestLng   float64    `db:"dest_lng"`
	StartTime *time.Time `db:"start_time"`
	EndTime   *time.Time `db:"end_time"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// ToDTO converts an Intent to an IntentDTO
func (i *Intent) ToDTO() *IntentDTO {
	return &IntentDTO{
		ID:        i.ID,
		UserID:    i.UserID,
		OriginLat: i.Origin.Lat,
		OriginLng: i.Origin.Lng,
		DestLat:   i.Destination.Lat,
		DestLng:   i.Destination.Lng,
		StartTime: i.StartTime,
		EndTime:   i.EndTime,
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
	}
}

// ToIntent converts an IntentDTO to an Intent
func (dto *IntentDTO) ToIntent() *Intent {
	return &Intent{
		ID:          dto.ID,
		UserID:      dto.UserID,
		Origin:      Point{Lat: dto.OriginLat, Lng: dto.OriginLng},
		Destination: Point{Lat: dto.DestLat, Lng: dto.DestLng},
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		ExpiresAt:   dto.ExpiresAt,
		CreatedAt:   dto.CreatedAt,
	}
}

// CreateIntentRequest is the request body for creating an intent
type CreateIntentRequest struct {
	OriginLat        float64    `json:"origin_lat"`
	OriginLng        float64    `json:"origin_lng"`
	DestLat          float64    `json:"dest_lat"`
	DestLng          float64    `json:"dest_lng"`
	StartTime        *time.Time `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	ExpiresInMinutes int        `json:"expires_in_minutes"`
}
