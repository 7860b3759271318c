package intents

import (
	"context"
	"time"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/lastmile/services/intents IntentRepo

// IntentRepo defines the interface for intent data access operations
type IntentRepo interface {
	// CreateIntent persists intent unless its owner already holds an
	// unexpired one, in which case it returns a Conflict error.
	CreateIntent(ctx context.Context, intent *models.Intent) (*models.Intent, error)
	GetIntent(ctx context.Context, intentID string) (*models.Intent, error)
	ListActiveByOwner(ctx context.Context, userID string, now time.Time) ([]*models.Intent, error)
	// DeleteIntent removes the intent together with every session that
	// references it and returns the removed sessions.
	DeleteIntent(ctx context.Context, intentID string) ([]*models.Session, error)
}
