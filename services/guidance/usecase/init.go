package usecase

import "github.com/piresc/lastmile/services/guidance"

// GuidanceUC implements the guidance use case interface
type GuidanceUC struct {
	stops      guidance.StopCatalog
	directions guidance.DirectionsGW
}

// NewGuidanceUC creates a new guidance use case
func NewGuidanceUC(stops guidance.StopCatalog, directions guidance.DirectionsGW) *GuidanceUC {
	return &GuidanceUC{stops: stops, directions: directions}
}
