package match

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lastmile/services/match MatchUC

// MatchUC defines the interface for match business logic
type MatchUC interface {
	// FindMatches returns candidates for an intent, newest first, with route
	// overlap and mean rating attached. Unknown intents yield an empty list.
	FindMatches(ctx context.Context, sourceIntentID string, limit int) ([]*models.MatchCandidate, error)
}
