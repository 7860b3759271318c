package models

// WalkFromStopRequest asks for walking directions from a stop to a destination
type WalkFromStopRequest struct {
	StopID  string  `json:"stop_id"`
	DestLat float64 `json:"dest_lat"`
	DestLng float64 `json:"dest_lng"`
}

// WalkStep is one instruction of a walking route
type WalkStep struct {
	Instruction string  `json:"instruction"`
	DistanceM   float64 `json:"distance_m"`
	DurationS   float64 `json:"duration_s"`
}

// WalkRoute is a walking route returned by the directions collaborator
type WalkRoute struct {
	DistanceM float64    `json:"distance_m"`
	DurationS float64    `json:"duration_s"`
	Steps     []WalkStep `json:"steps"`
}

// WalkGuidance is the walking route from a stop, annotated with the stop
type WalkGuidance struct {
	OriginStopID string     `json:"origin_stop_id"`
	OriginName   string     `json:"origin_name,omitempty"`
	DistanceM    float64    `json:"distance_m"`
	DurationS    float64    `json:"duration_s"`
	Steps        []WalkStep `json:"steps"`
}
