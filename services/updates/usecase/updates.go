package usecase

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// Notify signals userIDs to re-fetch the given resource type
func (uc *UpdatesUC) Notify(ctx context.Context, userIDs []string, updateType models.UpdateType) {
	ids := compact(userIDs)
	if len(ids) == 0 {
		return
	}
	broadcast := models.UpdateBroadcast{
		UserIDs: ids,
		Event:   models.UpdateEvent{Type: updateType},
	}

	if uc.updatesGW != nil {
		err := uc.updatesGW.PublishUpdate(ctx, broadcast)
		if err == nil {
			return
		}
		logger.WarnCtx(ctx, "Failed to publish update, delivering locally",
			logger.Strings("user_ids", ids),
			logger.String("type", string(updateType)),
			logger.Err(err))
	}

	uc.Deliver(ctx, broadcast)
}

// Deliver queues the broadcast on the local subscriber handles
func (uc *UpdatesUC) Deliver(ctx context.Context, broadcast models.UpdateBroadcast) int {
	n := uc.hub.Notify(broadcast.UserIDs, broadcast.Event)
	logger.DebugCtx(ctx, "Delivered update",
		logger.Strings("user_ids", broadcast.UserIDs),
		logger.String("type", string(broadcast.Event.Type)),
		logger.Int("handles", n))
	return n
}

func compact(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
