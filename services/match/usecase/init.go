package usecase

import (
	"time"

	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/services/match"
)

// MatchUC implements the match use case interface
type MatchUC struct {
	cfg       *models.Config
	matchRepo match.MatchRepo
	stops     match.StopLocator
	now       func() time.Time
}

// NewMatchUC creates a new match use case. stops may be nil, which
// disables same-stop candidates.
func NewMatchUC(cfg *models.Config, matchRepo match.MatchRepo, stops match.StopLocator) *MatchUC {
	return &MatchUC{
		cfg:       cfg,
		matchRepo: matchRepo,
		stops:     stops,
		now:       models.Now,
	}
}
