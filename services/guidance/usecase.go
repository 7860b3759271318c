package guidance

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lastmile/services/guidance GuidanceUC

// GuidanceUC defines walking guidance operations
type GuidanceUC interface {
	WalkFromStop(ctx context.Context, req models.WalkFromStopRequest) (*models.WalkGuidance, error)
	ListStops(ctx context.Context) []models.Stop
}
