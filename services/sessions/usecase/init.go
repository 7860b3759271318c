package usecase

import (
	"time"

	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/services/intents"
	"github.com/piresc/lastmile/services/sessions"
	"github.com/piresc/lastmile/services/updates"
)

// SessionUC implements the session use case interface
type SessionUC struct {
	cfg          *models.Config
	sessionRepo  sessions.SessionRepo
	locationRepo sessions.LocationRepo
	intentUC     intents.IntentUC
	updatesUC    updates.UpdatesUC
	sosGW        sessions.SOSGW
	locks        *lockArena
	now          func() time.Time
}

// NewSessionUC creates a new session use case. sosGW may be nil, in which
// case SOS events are only logged.
func NewSessionUC(
	cfg *models.Config,
	sessionRepo sessions.SessionRepo,
	locationRepo sessions.LocationRepo,
	intentUC intents.IntentUC,
	updatesUC updates.UpdatesUC,
	sosGW sessions.SOSGW,
) *SessionUC {
	return &SessionUC{
		cfg:          cfg,
		sessionRepo:  sessionRepo,
		locationRepo: locationRepo,
		intentUC:     intentUC,
		updatesUC:    updatesUC,
		sosGW:        sosGW,
		locks:        newLockArena(),
		now:          models.Now,
	}
}
