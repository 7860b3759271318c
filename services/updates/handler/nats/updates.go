package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/lastmile/internal/pkg/constants"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/models"
	natspkg "github.com/piresc/lastmile/internal/pkg/nats"
	"github.com/piresc/lastmile/services/updates"
)

// UpdatesHandler consumes update broadcasts published by any instance
type UpdatesHandler struct {
	updatesUC updates.UpdatesUC
	client    *natspkg.Client
	subs      []*nats.Subscription
}

// NewUpdatesHandler creates the NATS consumer for update broadcasts
func NewUpdatesHandler(updatesUC updates.UpdatesUC, client *natspkg.Client) *UpdatesHandler {
	return &UpdatesHandler{
		updatesUC: updatesUC,
		client:    client,
	}
}

// InitNATSConsumers subscribes to the updates subject
func (h *UpdatesHandler) InitNATSConsumers() error {
	sub, err := h.client.Subscribe(constants.SubjectUpdates, func(msg *nats.Msg) {
		if err := h.HandleUpdate(msg.Data); err != nil {
			logger.Warn("Dropping malformed update broadcast", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectUpdates, err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

// HandleUpdate decodes one broadcast and delivers it locally
func (h *UpdatesHandler) HandleUpdate(data []byte) error {
	var broadcast models.UpdateBroadcast
	if err := json.Unmarshal(data, &broadcast); err != nil {
		return fmt.Errorf("failed to decode update broadcast: %w", err)
	}
	if broadcast.Event.Type == "" || len(broadcast.UserIDs) == 0 {
		return fmt.Errorf("incomplete update broadcast")
	}
	h.updatesUC.Deliver(context.Background(), broadcast)
	return nil
}

// Close removes the subscriptions
func (h *UpdatesHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
	h.subs = nil
}
