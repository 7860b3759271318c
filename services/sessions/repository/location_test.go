package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/lastmile/internal/pkg/database"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/services/sessions/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLocationRepo(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *repository.LocationRepo) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	return mr, repository.NewLocationRepository(client, ttl)
}

func TestLocationRepo_StoreAndRead(t *testing.T) {
	_, repo := setupLocationRepo(t, 5*time.Minute)
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	require.NoError(t, repo.StoreLocation(ctx, "s1", models.SideA, models.SideLocation{Lat: 30.44, Lng: -84.29, Timestamp: ts}))
	require.NoError(t, repo.StoreLocation(ctx, "s1", models.SideB, models.SideLocation{Lat: 30.45, Lng: -84.28, Timestamp: ts}))
	require.NoError(t, repo.StoreLocation(ctx, "s1", models.SideA, models.SideLocation{Lat: 30.46, Lng: -84.27, Timestamp: ts}))

	locs, err := repo.GetLocations(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, 30.46, locs[models.SideA].Lat)
	assert.Equal(t, ts, locs[models.SideB].Timestamp)
}

func TestLocationRepo_ExpiresAfterTTL(t *testing.T) {
	mr, repo := setupLocationRepo(t, 300*time.Second)
	ctx := context.Background()

	require.NoError(t, repo.StoreLocation(ctx, "s1", models.SideA, models.SideLocation{Lat: 1, Lng: 2}))
	assert.Equal(t, 300*time.Second, mr.TTL("session:s1:locations"))

	mr.FastForward(200 * time.Second)
	require.NoError(t, repo.StoreLocation(ctx, "s1", models.SideB, models.SideLocation{Lat: 3, Lng: 4}))
	assert.Equal(t, 300*time.Second, mr.TTL("session:s1:locations"))

	mr.FastForward(301 * time.Second)
	locs, err := repo.GetLocations(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestLocationRepo_SkipsMalformedEntries(t *testing.T) {
	mr, repo := setupLocationRepo(t, time.Minute)
	mr.HSet("session:s1:locations", "a", "not-json")
	mr.HSet("session:s1:locations", "c", `{"lat":1,"lng":2}`)
	mr.HSet("session:s1:locations", "b", `{"lat":1,"lng":2,"ts":"2026-03-01T18:00:00Z"}`)

	locs, err := repo.GetLocations(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, 1.0, locs[models.SideB].Lat)
}

func TestLocationRepo_Clear(t *testing.T) {
	mr, repo := setupLocationRepo(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.StoreLocation(ctx, "s1", models.SideA, models.SideLocation{Lat: 1, Lng: 2}))
	require.NoError(t, repo.ClearLocations(ctx, "s1"))
	assert.False(t, mr.Exists("session:s1:locations"))

	// clearing twice is fine
	require.NoError(t, repo.ClearLocations(ctx, "s1"))
}
