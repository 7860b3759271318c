package gateway

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/constants"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// Publisher is the part of the NATS client the gateway needs
type Publisher interface {
	PublishJSON(subject string, v interface{}) error
}

// UpdatesGW publishes update broadcasts on NATS
type UpdatesGW struct {
	publisher Publisher
}

// NewUpdatesGW creates a NATS backed gateway
func NewUpdatesGW(publisher Publisher) *UpdatesGW {
	return &UpdatesGW{publisher: publisher}
}

// PublishUpdate publishes broadcast on the shared updates subject
func (g *UpdatesGW) PublishUpdate(ctx context.Context, broadcast models.UpdateBroadcast) error {
	return g.publisher.PublishJSON(constants.SubjectUpdates, broadcast)
}
