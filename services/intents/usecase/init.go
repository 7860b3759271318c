package usecase

import (
	"time"

	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/services/intents"
	"github.com/piresc/lastmile/services/updates"
)

// IntentUC implements the intent use case interface
type IntentUC struct {
	cfg        *models.Config
	intentRepo intents.IntentRepo
	locations  intents.LocationCleaner
	updatesUC  updates.UpdatesUC
	now        func() time.Time
}

// NewIntentUC creates a new intent use case
func NewIntentUC(
	cfg *models.Config,
	intentRepo intents.IntentRepo,
	locations intents.LocationCleaner,
	updatesUC updates.UpdatesUC,
) *IntentUC {
	return &IntentUC{
		cfg:        cfg,
		intentRepo: intentRepo,
		locations:  locations,
		updatesUC:  updatesUC,
		now:        models.Now,
	}
}
