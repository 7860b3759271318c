package intents

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lastmile/services/intents IntentUC

// IntentUC defines the intent business logic
type IntentUC interface {
	CreateIntent(ctx context.Context, userID string, req models.CreateIntentRequest) (*models.Intent, error)
	ListMyIntents(ctx context.Context, userID string) ([]*models.Intent, error)
	GetIntent(ctx context.Context, intentID string) (*models.Intent, error)
	// GetOwnedIntent returns NotFound for unknown ids and Forbidden when
	// userID does not own the intent.
	GetOwnedIntent(ctx context.Context, userID, intentID string) (*models.Intent, error)
	DeleteIntent(ctx context.Context, userID, intentID string) error
}
