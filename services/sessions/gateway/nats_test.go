package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/lastmile/internal/pkg/constants"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

type recordingPublisher struct {
	subject string
	payload interface{}
	err     error
}

func (p *recordingPublisher) PublishJSON(subject string, v interface{}) error {
	p.subject = subject
	p.payload = v
	return p.err
}

func TestPublishSOS(t *testing.T) {
	pub := &recordingPublisher{}
	gw := NewSOSGW(pub)
	event := models.SOSEvent{SessionID: "s1", Side: models.SideA, State: "ACTIVE", At: time.Now()}

	assert.NoError(t, gw.PublishSOS(context.Background(), event))
	assert.Equal(t, constants.SubjectSOS, pub.subject)
	assert.Equal(t, event, pub.payload)

	pub.err = errors.New("not connected")
	assert.Error(t, gw.PublishSOS(context.Background(), event))
}
