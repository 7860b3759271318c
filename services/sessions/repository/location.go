package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/constants"
	"github.com/piresc/lastmile/internal/pkg/database"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// LocationRepo keeps live session locations in a Redis hash per session
type LocationRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(redisClient *database.RedisClient, ttl time.Duration) *LocationRepo {
	return &LocationRepo{redisClient: redisClient, ttl: ttl}
}

func locationKey(sessionID string) string {
	return fmt.Sprintf(constants.KeySessionLocations, sessionID)
}

// StoreLocation overwrites one side's position and refreshes the key TTL
func (r *LocationRepo) StoreLocation(ctx context.Context, sessionID string, side models.Side, loc models.SideLocation) error {
	payload, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to encode location: %w", err)
	}
	if err := r.redisClient.HSetWithTTL(ctx, locationKey(sessionID), string(side), payload, r.ttl); err != nil {
		return apperror.Upstream(err, "failed to store location")
	}
	return nil
}

// GetLocations returns the unexpired positions of both sides
func (r *LocationRepo) GetLocations(ctx context.Context, sessionID string) (map[models.Side]models.SideLocation, error) {
	fields, err := r.redisClient.HGetAll(ctx, locationKey(sessionID))
	if err != nil {
		return nil, apperror.Upstream(err, "failed to read locations")
	}

	out := make(map[models.Side]models.SideLocation, len(fields))
	for field, raw := range fields {
		side := models.Side(field)
		if side != models.SideA && side != models.SideB {
			continue
		}
		var loc models.SideLocation
		if err := json.Unmarshal([]byte(raw), &loc); err != nil {
			logger.WarnCtx(ctx, "Skipping malformed location entry",
				logger.String("session_id", sessionID),
				logger.String("side", field),
				logger.Err(err))
			continue
		}
		out[side] = loc
	}
	return out, nil
}

// ClearLocations drops the session's location key
func (r *LocationRepo) ClearLocations(ctx context.Context, sessionID string) error {
	if err := r.redisClient.Delete(ctx, locationKey(sessionID)); err != nil {
		return apperror.Upstream(err, "failed to clear locations")
	}
	return nil
}
