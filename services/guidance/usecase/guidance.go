package usecase

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// WalkFromStop returns walking directions from a known stop to a destination
func (uc *GuidanceUC) WalkFromStop(ctx context.Context, req models.WalkFromStopRequest) (*models.WalkGuidance, error) {
	stop, ok := uc.stops.Get(req.StopID)
	if !ok {
		return nil, apperror.NotFound("stop %s not found", req.StopID)
	}
	dest := models.Point{Lat: req.DestLat, Lng: req.DestLng}
	if !dest.Valid() {
		return nil, apperror.Validation("destination is out of range")
	}

	route, err := uc.directions.WalkingRoute(ctx, stop.Point(), dest)
	if err != nil {
		logger.WarnCtx(ctx, "Walking directions failed",
			logger.String("stop_id", stop.ID),
			logger.Err(err))
		return nil, err
	}

	return &models.WalkGuidance{
		OriginStopID: stop.ID,
		OriginName:   stop.Name,
		DistanceM:    route.DistanceM,
		DurationS:    route.DurationS,
		Steps:        route.Steps,
	}, nil
}

// ListStops returns the stop catalog ordered by id
func (uc *GuidanceUC) ListStops(ctx context.Context) []models.Stop {
	return uc.stops.All()
}
