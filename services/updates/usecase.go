package updates

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lastmile/services/updates UpdatesUC

// UpdatesUC fans change notifications out to the affected users
type UpdatesUC interface {
	// Notify signals every listed user. Failures are logged, never returned.
	Notify(ctx context.Context, userIDs []string, updateType models.UpdateType)
	// Deliver hands a broadcast to the subscribers connected to this instance
	Deliver(ctx context.Context, broadcast models.UpdateBroadcast) int
}
