package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/metrics"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/internal/utils"
)

const tokenBytes = 32

// CreateSession pairs two intents into a REQUESTED session. The requester
// always becomes side a.
func (uc *SessionUC) CreateSession(ctx context.Context, requesterID string, req models.CreateSessionRequest) (*models.SessionView, error) {
	intentA, err := uc.intentUC.GetIntent(ctx, req.IntentAID)
	if err != nil {
		return nil, err
	}
	intentB, err := uc.intentUC.GetIntent(ctx, req.IntentBID)
	if err != nil {
		return nil, err
	}

	if intentA.ID == intentB.ID {
		return nil, apperror.Validation("a session needs two different intents")
	}
	if intentA.UserID != requesterID && intentB.UserID != requesterID {
		return nil, apperror.Forbidden("requester owns neither intent")
	}
	if intentA.UserID == intentB.UserID {
		return nil, apperror.Validation("both intents belong to the same user")
	}
	if intentB.UserID == requesterID {
		intentA, intentB = intentB, intentA
	}

	maxDuration, err := uc.maxDuration(req.MaxDurationMinutes)
	if err != nil {
		return nil, err
	}

	tokenA, err := utils.GenerateToken(tokenBytes)
	if err != nil {
		return nil, err
	}
	tokenB, err := utils.GenerateToken(tokenBytes)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	session := &models.Session{
		ID:                 uuid.NewString(),
		IntentAID:          intentA.ID,
		IntentBID:          intentB.ID,
		UserAID:            intentA.UserID,
		UserBID:            intentB.UserID,
		State:              models.SessionStateRequested,
		TokenA:             tokenA,
		TokenB:             tokenB,
		MaxDurationMinutes: maxDuration,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := uc.sessionRepo.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}
	metrics.SessionsCreated.Inc()

	logger.InfoCtx(ctx, "Session created",
		logger.String("session_id", created.ID),
		logger.String("user_a_id", created.UserAID),
		logger.String("user_b_id", created.UserBID),
		logger.String("token_a", utils.MaskToken(created.TokenA)),
		logger.String("token_b", utils.MaskToken(created.TokenB)))

	uc.updatesUC.Notify(ctx, created.Parties(), models.UpdateTypeSessions)

	view := models.NewSessionView(created, requesterID)
	view.RouteA = &models.RoutePoints{Origin: intentA.Origin, Destination: intentA.Destination}
	view.RouteB = &models.RoutePoints{Origin: intentB.Origin, Destination: intentB.Destination}
	return view, nil
}

func (uc *SessionUC) maxDuration(requested int) (int, error) {
	cfg := uc.cfg.Session
	if requested == 0 {
		return cfg.DefaultMaxDurationMinutes, nil
	}
	if requested < cfg.MinDurationMinutes || requested > cfg.MaxDurationMinutes {
		return 0, apperror.Validation("max_duration_minutes must be between %d and %d",
			cfg.MinDurationMinutes, cfg.MaxDurationMinutes)
	}
	return requested, nil
}

// GetSession retrieves a session by ID
func (uc *SessionUC) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, apperror.NotFound("session %s not found", sessionID)
	}
	return uc.sessionRepo.GetSession(ctx, sessionID)
}

// GetSessionForUser returns the caller's view of a session
func (uc *SessionUC) GetSessionForUser(ctx context.Context, userID, sessionID string) (*models.SessionView, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := session.SideForUser(userID); !ok {
		return nil, apperror.Forbidden("not a party of session %s", sessionID)
	}

	views := []*models.SessionView{models.NewSessionView(session, userID)}
	if err := uc.attachRoutes(ctx, views); err != nil {
		return nil, err
	}
	return views[0], nil
}

// ListMySessions returns the caller's live sessions, newest first
func (uc *SessionUC) ListMySessions(ctx context.Context, userID string) ([]*models.SessionView, error) {
	list, err := uc.sessionRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*models.SessionView, 0, len(list))
	for _, s := range list {
		views = append(views, models.NewSessionView(s, userID))
	}
	if err := uc.attachRoutes(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (uc *SessionUC) attachRoutes(ctx context.Context, views []*models.SessionView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]string, 0, 2*len(views))
	for _, v := range views {
		ids = append(ids, v.IntentAID, v.IntentBID)
	}
	routes, err := uc.sessionRepo.GetRoutePoints(ctx, ids)
	if err != nil {
		return err
	}

	for _, v := range views {
		if r, ok := routes[v.IntentAID]; ok {
			r := r
			v.RouteA = &r
		}
		if r, ok := routes[v.IntentBID]; ok {
			r := r
			v.RouteB = &r
		}
	}
	return nil
}
