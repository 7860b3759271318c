package models

import "time"

// Point is a WGS84 coordinate
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point lies inside WGS84 bounds
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Side identifies one party of a session
type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

// SideLocation is the last known position of one side of a session
type SideLocation struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"ts"`
}

// LocationReport is a single frame received on the session location channel
type LocationReport struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}
