package updates

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/lastmile/services/updates UpdatesGW,LocalHub

// UpdatesGW publishes broadcasts to every service instance
type UpdatesGW interface {
	PublishUpdate(ctx context.Context, broadcast models.UpdateBroadcast) error
}

// LocalHub is the in-process subscriber registry
type LocalHub interface {
	Notify(userIDs []string, event models.UpdateEvent) int
}
