package intents

import "context"

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/lastmile/services/intents LocationCleaner

// LocationCleaner drops the live-location entry of a removed session
type LocationCleaner interface {
	ClearLocations(ctx context.Context, sessionID string) error
}
