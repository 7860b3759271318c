package usecase

import (
	"context"
	"testing"

	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateSession(t *testing.T) {
	f := newMemFixture()
	s := f.seed(models.SessionStateCompleted)
	ctx := context.Background()

	rating, err := f.uc.RateSession(ctx, s.ID, "bob", 4)
	require.NoError(t, err)
	assert.Equal(t, "amy", rating.RateeID)
	assert.Equal(t, f.now, rating.CreatedAt)

	_, err = f.uc.RateSession(ctx, s.ID, "bob", 5)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	rating, err = f.uc.RateSession(ctx, s.ID, "amy", 1)
	require.NoError(t, err)
	assert.Equal(t, "bob", rating.RateeID)
}

func TestRateSession_Rejections(t *testing.T) {
	f := newMemFixture()
	done := f.seed(models.SessionStateCompleted)
	active := f.seed(models.SessionStateActive)
	ctx := context.Background()

	_, err := f.uc.RateSession(ctx, done.ID, "carol", 3)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = f.uc.RateSession(ctx, active.ID, "amy", 3)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	for _, score := range []int{0, 6, -1} {
		_, err = f.uc.RateSession(ctx, done.ID, "amy", score)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	}
}
