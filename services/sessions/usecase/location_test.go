package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSession(id string) *models.Session {
	return &models.Session{ID: id, UserAID: "amy", UserBID: "bob", TokenA: "ta", TokenB: "tb", State: models.SessionStateActive}
}

func TestReportLocation_StoresForTokenSide(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()

	f.repo.EXPECT().GetSession(gomock.Any(), id).Return(activeSession(id), nil)
	f.locations.EXPECT().
		StoreLocation(gomock.Any(), id, models.SideB, models.SideLocation{Lat: 30.44, Lng: -84.29, Timestamp: f.now}).
		Return(nil)

	require.NoError(t, f.uc.ReportLocation(context.Background(), id, "tb", 30.44, -84.29))
}

func TestReportLocation_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		state    models.SessionState
		token    string
		lat, lng float64
		wantKind error
	}{
		{"not active", models.SessionStateAccepted, "ta", 1, 1, apperror.ErrConflict},
		{"bad token", models.SessionStateActive, "zz", 1, 1, apperror.ErrForbidden},
		{"latitude out of range", models.SessionStateActive, "ta", 91, 1, apperror.ErrValidation},
		{"longitude out of range", models.SessionStateActive, "ta", 1, -181, apperror.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := uuid.NewString()
			s := activeSession(id)
			s.State = tt.state
			f.repo.EXPECT().GetSession(gomock.Any(), id).Return(s, nil)

			err := f.uc.ReportLocation(context.Background(), id, tt.token, tt.lat, tt.lng)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestAuthorizeChannel(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	f.repo.EXPECT().GetSession(gomock.Any(), id).Return(activeSession(id), nil)

	side, err := f.uc.AuthorizeChannel(context.Background(), id, "ta")
	require.NoError(t, err)
	assert.Equal(t, models.SideA, side)

	_, err = f.uc.AuthorizeChannel(context.Background(), "garbage", "ta")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReadLocationsForUser(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	locs := map[models.Side]models.SideLocation{models.SideA: {Lat: 1, Lng: 2}}

	f.repo.EXPECT().GetSession(gomock.Any(), id).Return(activeSession(id), nil).Times(2)
	f.locations.EXPECT().GetLocations(gomock.Any(), id).Return(locs, nil)

	got, err := f.uc.ReadLocationsForUser(context.Background(), "bob", id)
	require.NoError(t, err)
	assert.Equal(t, locs, got)

	_, err = f.uc.ReadLocationsForUser(context.Background(), "carol", id)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
