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

// SOSGW publishes emergency events on NATS
type SOSGW struct {
	publisher Publisher
}

// NewSOSGW creates a NATS backed SOS gateway
func NewSOSGW(publisher Publisher) *SOSGW {
	return &SOSGW{publisher: publisher}
}

// PublishSOS publishes event on the SOS subject
func (g *SOSGW) PublishSOS(ctx context.Context, event models.SOSEvent) error {
	return g.publisher.PublishJSON(constants.SubjectSOS, event)
}
