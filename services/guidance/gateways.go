package guidance

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/lastmile/services/guidance DirectionsGW,StopCatalog

// DirectionsGW fetches walking routes from the directions collaborator
type DirectionsGW interface {
	WalkingRoute(ctx context.Context, from, to models.Point) (*models.WalkRoute, error)
}

// StopCatalog is the read side of the stop reference data
type StopCatalog interface {
	Get(id string) (models.Stop, bool)
	All() []models.Stop
}
