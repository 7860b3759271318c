package sessions

import (
	"context"
	"time"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/lastmile/services/sessions SessionRepo,LocationRepo

// SessionRepo defines the interface for session data access operations
type SessionRepo interface {
	// CreateSession inserts session unless either user already holds a
	// non-terminal session, in which case it returns a Conflict error.
	CreateSession(ctx context.Context, session *models.Session) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	ListActiveByUser(ctx context.Context, userID string) ([]*models.Session, error)
	// GetRoutePoints returns origin and destination per intent id
	GetRoutePoints(ctx context.Context, intentIDs []string) (map[string]models.RoutePoints, error)
	// UpdateState moves a session from one state to another. It returns a
	// Conflict error when the session is no longer in state from.
	UpdateState(ctx context.Context, sessionID string, from, to models.SessionState, now time.Time) (*models.Session, error)
	MarkSOS(ctx context.Context, sessionID string, now time.Time) (*models.Session, error)
	// ListOverrun returns ACTIVE sessions whose time budget ran out at now
	ListOverrun(ctx context.Context, now time.Time) ([]*models.Session, error)
	CreateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error)
}

// LocationRepo stores the last known position of each side of a session
type LocationRepo interface {
	StoreLocation(ctx context.Context, sessionID string, side models.Side, loc models.SideLocation) error
	GetLocations(ctx context.Context, sessionID string) (map[models.Side]models.SideLocation, error)
	ClearLocations(ctx context.Context, sessionID string) error
}
