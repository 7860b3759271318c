package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// RateSession records raterID's score for the other party of a completed session
func (uc *SessionUC) RateSession(ctx context.Context, sessionID, raterID string, score int) (*models.Rating, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	side, ok := session.SideForUser(raterID)
	if !ok {
		return nil, apperror.Forbidden("not a party of session %s", sessionID)
	}
	if session.State != models.SessionStateCompleted {
		return nil, apperror.Conflict("session %s is %s, only completed sessions can be rated", sessionID, session.State)
	}
	if score < 1 || score > 5 {
		return nil, apperror.Validation("score must be between 1 and 5")
	}

	ratee := session.UserBID
	if side == models.SideB {
		ratee = session.UserAID
	}

	rating, err := uc.sessionRepo.CreateRating(ctx, &models.Rating{
		ID:        uuid.NewString(),
		RaterID:   raterID,
		RateeID:   ratee,
		SessionID: sessionID,
		Score:     score,
		CreatedAt: uc.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Session rated",
		logger.String("session_id", sessionID),
		logger.String("rater_id", raterID),
		logger.Int("score", score))
	return rating, nil
}
