package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// CreateIntent validates and stores a new intent for userID
func (uc *IntentUC) CreateIntent(ctx context.Context, userID string, req models.CreateIntentRequest) (*models.Intent, error) {
	ttl, err := uc.validateCreate(req)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	intent := &models.Intent{
		ID:          uuid.NewString(),
		UserID:      userID,
		Origin:      models.Point{Lat: req.OriginLat, Lng: req.OriginLng},
		Destination: models.Point{Lat: req.DestLat, Lng: req.DestLng},
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
	}

	created, err := uc.intentRepo.CreateIntent(ctx, intent)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Intent created",
		logger.String("intent_id", created.ID),
		logger.String("user_id", userID),
		logger.Duration("ttl", ttl))

	uc.updatesUC.Notify(ctx, []string{userID}, models.UpdateTypeIntents)
	return created, nil
}

func (uc *IntentUC) validateCreate(req models.CreateIntentRequest) (time.Duration, error) {
	origin := models.Point{Lat: req.OriginLat, Lng: req.OriginLng}
	dest := models.Point{Lat: req.DestLat, Lng: req.DestLng}
	if !origin.Valid() {
		return 0, apperror.Validation("origin is out of range")
	}
	if !dest.Valid() {
		return 0, apperror.Validation("destination is out of range")
	}

	if (req.StartTime == nil) != (req.EndTime == nil) {
		return 0, apperror.Validation("start_time and end_time must be given together")
	}
	if req.StartTime != nil && req.StartTime.After(*req.EndTime) {
		return 0, apperror.Validation("start_time must not be after end_time")
	}

	maxTTL := uc.cfg.Match.MaxIntentLifetime
	switch {
	case req.ExpiresInMinutes == 0:
		return uc.cfg.Match.DefaultIntentTTL, nil
	case req.ExpiresInMinutes < 1 || time.Duration(req.ExpiresInMinutes)*time.Minute > maxTTL:
		return 0, apperror.Validation("expires_in_minutes must be between 1 and %d", int(maxTTL.Minutes()))
	}
	return time.Duration(req.ExpiresInMinutes) * time.Minute, nil
}

// ListMyIntents returns the caller's unexpired intents, newest first
func (uc *IntentUC) ListMyIntents(ctx context.Context, userID string) ([]*models.Intent, error) {
	return uc.intentRepo.ListActiveByOwner(ctx, userID, uc.now().UTC())
}

// GetIntent retrieves an intent by ID
func (uc *IntentUC) GetIntent(ctx context.Context, intentID string) (*models.Intent, error) {
	if _, err := uuid.Parse(intentID); err != nil {
		return nil, apperror.NotFound("intent %s not found", intentID)
	}
	return uc.intentRepo.GetIntent(ctx, intentID)
}

// GetOwnedIntent retrieves an intent and checks that userID owns it
func (uc *IntentUC) GetOwnedIntent(ctx context.Context, userID, intentID string) (*models.Intent, error) {
	intent, err := uc.GetIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if intent.UserID != userID {
		return nil, apperror.Forbidden("intent %s belongs to another user", intentID)
	}
	return intent, nil
}

// DeleteIntent removes an intent owned by userID. Sessions built on it are
// removed with it and their parties are told to re-fetch.
func (uc *IntentUC) DeleteIntent(ctx context.Context, userID, intentID string) error {
	if _, err := uc.GetOwnedIntent(ctx, userID, intentID); err != nil {
		return err
	}

	removed, err := uc.intentRepo.DeleteIntent(ctx, intentID)
	if err != nil {
		return err
	}

	var parties []string
	for _, s := range removed {
		if err := uc.locations.ClearLocations(ctx, s.ID); err != nil {
			logger.WarnCtx(ctx, "Failed to clear locations of removed session",
				logger.String("session_id", s.ID),
				logger.Err(err))
		}
		parties = append(parties, s.Parties()...)
	}

	logger.InfoCtx(ctx, "Intent deleted",
		logger.String("intent_id", intentID),
		logger.String("user_id", userID),
		logger.Int("removed_sessions", len(removed)))

	uc.updatesUC.Notify(ctx, []string{userID}, models.UpdateTypeIntents)
	uc.updatesUC.Notify(ctx, append([]string{userID}, parties...), models.UpdateTypeSessions)
	return nil
}
