package sessions

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/lastmile/services/sessions SOSGW

// SOSGW hands emergency events to external handling
type SOSGW interface {
	PublishSOS(ctx context.Context, event models.SOSEvent) error
}
