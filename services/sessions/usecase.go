package sessions

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lastmile/services/sessions SessionUC

// SessionUC defines the session coordinator
type SessionUC interface {
	CreateSession(ctx context.Context, requesterID string, req models.CreateSessionRequest) (*models.SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	// GetSessionForUser returns Forbidden when userID is not a party
	GetSessionForUser(ctx context.Context, userID, sessionID string) (*models.SessionView, error)
	ListMySessions(ctx context.Context, userID string) ([]*models.SessionView, error)

	Transition(ctx context.Context, sessionID string, to models.SessionState, token string) (*models.Session, error)
	SOS(ctx context.Context, sessionID, token string) (*models.Session, error)
	RateSession(ctx context.Context, sessionID, raterID string, score int) (*models.Rating, error)

	// AuthorizeChannel resolves the side a token speaks for on an ACTIVE session
	AuthorizeChannel(ctx context.Context, sessionID, token string) (models.Side, error)
	ReportLocation(ctx context.Context, sessionID, token string, lat, lng float64) error
	ReadLocations(ctx context.Context, sessionID string) (map[models.Side]models.SideLocation, error)
	ReadLocationsForUser(ctx context.Context, userID, sessionID string) (map[models.Side]models.SideLocation, error)

	// SweepOnce completes every overrun ACTIVE session and returns how many it closed
	SweepOnce(ctx context.Context) (int, error)
}
