package models

// UserProfile is the part of a user record the core reads.
// Profiles are owned by the identity collaborator.
type UserProfile struct {
	ID         string  `json:"id" db:"id"`
	Name       *string `json:"name,omitempty" db:"name"`
	AvatarURL  *string `json:"avatar_url,omitempty" db:"avatar_url"`
	HasVehicle bool    `json:"has_vehicle" db:"has_vehicle"`
}
