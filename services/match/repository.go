package match

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/lastmile/services/match MatchRepo

// MatchRepo defines the read model the matcher queries
type MatchRepo interface {
	// GetSource loads an intent with its owner's profile. Unknown intents
	// yield a NotFound error.
	GetSource(ctx context.Context, intentID string) (*models.Intent, *models.UserProfile, error)
	FindCandidates(ctx context.Context, q models.CandidateQuery) ([]*models.CandidateRow, error)
	// MeanRatings returns the mean received score per user. Users without
	// ratings are absent from the map.
	MeanRatings(ctx context.Context, userIDs []string) (map[string]float64, error)
}
