package models

// Stop is a known transit stop from the reference catalog
type Stop struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Point returns the stop position
func (s Stop) Point() Point {
	return Point{Lat: s.Lat, Lng: s.Lng}
}
