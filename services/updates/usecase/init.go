package usecase

import (
	"github.com/piresc/lastmile/services/updates"
)

// UpdatesUC implements updates.UpdatesUC
type UpdatesUC struct {
	hub       updates.LocalHub
	updatesGW updates.UpdatesGW
}

// NewUpdatesUC creates the notifier. A nil gateway delivers straight to the
// local hub, which is enough for a single instance.
func NewUpdatesUC(hub updates.LocalHub, updatesGW updates.UpdatesGW) *UpdatesUC {
	return &UpdatesUC{
		hub:       hub,
		updatesGW: updatesGW,
	}
}
