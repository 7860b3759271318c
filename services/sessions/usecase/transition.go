package usecase

import (
	"context"
	"errors"

	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/metrics"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// Transition moves a session to state to on behalf of the holder of token.
// Concurrent attempts on one session are serialised; exactly one of two
// conflicting transitions wins.
func (uc *SessionUC) Transition(ctx context.Context, sessionID string, to models.SessionState, token string) (*models.Session, error) {
	if !to.Valid() {
		return nil, apperror.Validation("unknown state %q", to)
	}

	unlock := uc.locks.Lock(sessionID)
	defer unlock()

	updated, err := uc.transitionLocked(ctx, sessionID, to, token)
	metrics.Transitions.WithLabelValues(string(to), transitionResult(err)).Inc()
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Session transitioned",
		logger.String("session_id", sessionID),
		logger.String("state", string(updated.State)))

	uc.afterTransition(ctx, updated)
	return updated, nil
}

func (uc *SessionUC) transitionLocked(ctx context.Context, sessionID string, to models.SessionState, token string) (*models.Session, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := session.SideForToken(token); !ok {
		return nil, apperror.Forbidden("token does not match session %s", sessionID)
	}
	if !session.State.CanTransitionTo(to) {
		return nil, apperror.Conflict("transition %s -> %s not allowed", session.State, to)
	}
	return uc.sessionRepo.UpdateState(ctx, sessionID, session.State, to, uc.now().UTC())
}

// afterTransition notifies both parties and drops live locations once the
// session can no longer move.
func (uc *SessionUC) afterTransition(ctx context.Context, session *models.Session) {
	if session.State.Terminal() {
		if err := uc.locationRepo.ClearLocations(ctx, session.ID); err != nil {
			logger.WarnCtx(ctx, "Failed to clear session locations",
				logger.String("session_id", session.ID),
				logger.Err(err))
		}
	}
	uc.updatesUC.Notify(ctx, session.Parties(), models.UpdateTypeSessions)
}

func transitionResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperror.ErrConflict):
		return "conflict"
	case errors.Is(err, apperror.ErrForbidden):
		return "forbidden"
	case errors.Is(err, apperror.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// SOS raises the emergency flag on a session in any state
func (uc *SessionUC) SOS(ctx context.Context, sessionID, token string) (*models.Session, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	side, ok := session.SideForToken(token)
	if !ok {
		return nil, apperror.Forbidden("token does not match session %s", sessionID)
	}

	now := uc.now().UTC()
	updated, err := uc.sessionRepo.MarkSOS(ctx, sessionID, now)
	if err != nil {
		return nil, err
	}

	logger.WarnCtx(ctx, "SOS raised",
		logger.String("session_id", sessionID),
		logger.String("side", string(side)),
		logger.String("state", string(updated.State)))

	if uc.sosGW != nil {
		event := models.SOSEvent{
			SessionID: updated.ID,
			Side:      side,
			UserAID:   updated.UserAID,
			UserBID:   updated.UserBID,
			State:     string(updated.State),
			At:        now,
		}
		if err := uc.sosGW.PublishSOS(ctx, event); err != nil {
			logger.ErrorCtx(ctx, "Failed to publish SOS event",
				logger.String("session_id", sessionID),
				logger.Err(err))
		}
	}

	uc.updatesUC.Notify(ctx, updated.Parties(), models.UpdateTypeSessions)
	return updated, nil
}
