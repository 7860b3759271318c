package utils

import (
	"math"
	"testing"

	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name      string
		p1        models.Point
		p2        models.Point
		expected  float64
		tolerance float64
	}{
		{
			name:      "same point",
			p1:        models.Point{Lat: 30.441, Lng: -84.298},
			p2:        models.Point{Lat: 30.441, Lng: -84.298},
			expected:  0,
			tolerance: 0.0001,
		},
		{
			name:      "about fifty meters north",
			p1:        models.Point{Lat: 30.441, Lng: -84.298},
			p2:        models.Point{Lat: 30.44145, Lng: -84.298},
			expected:  0.05,
			tolerance: 0.001,
		},
		{
			name:      "Tallahassee to Jacksonville",
			p1:        models.Point{Lat: 30.4383, Lng: -84.2807},
			p2:        models.Point{Lat: 30.3322, Lng: -81.6557},
			expected:  252,
			tolerance: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, HaversineKm(tt.p1, tt.p2), tt.tolerance)
		})
	}
}

func TestRouteOverlapScore(t *testing.T) {
	origin := models.Point{Lat: 30.441, Lng: -84.298}
	dest := models.Point{Lat: 30.455, Lng: -84.25}

	assert.Equal(t, 100.0, RouteOverlapScore(origin, dest, origin, dest))

	prev := 100.0
	for _, offset := range []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5} {
		shifted := models.Point{Lat: origin.Lat + offset, Lng: origin.Lng}
		score := RouteOverlapScore(origin, dest, shifted, dest)
		assert.Less(t, score, prev, "offset %v", offset)
		assert.GreaterOrEqual(t, score, 0.0)
		prev = score
	}

	far := models.Point{Lat: -30, Lng: 100}
	assert.InDelta(t, 0, RouteOverlapScore(origin, dest, far, far), 1e-9)

	// symmetric
	other := models.Point{Lat: 30.45, Lng: -84.29}
	assert.InDelta(t, RouteOverlapScore(origin, dest, other, dest), RouteOverlapScore(other, dest, origin, dest), 1e-12)
}

func TestBuddyScore(t *testing.T) {
	rating := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		overlap  float64
		rating   *float64
		expected float64
	}{
		{name: "no rating", overlap: 100, rating: nil, expected: 70},
		{name: "perfect", overlap: 100, rating: rating(5), expected: 100},
		{name: "trust capped at 100", overlap: 0, rating: rating(7), expected: 30},
		{name: "rounded to one decimal", overlap: 91.234, rating: rating(4.2), expected: 89.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuddyScore(tt.overlap, tt.rating))
		})
	}
}

func TestBoundingBox(t *testing.T) {
	center := models.Point{Lat: 30.441, Lng: -84.298}
	minLat, maxLat, minLng, maxLng := BoundingBox(center, 2000)

	assert.Less(t, minLat, center.Lat)
	assert.Greater(t, maxLat, center.Lat)
	assert.Less(t, minLng, center.Lng)
	assert.Greater(t, maxLng, center.Lng)

	// the box edges are at least the radius away
	assert.InDelta(t, 2.0, HaversineKm(center, models.Point{Lat: maxLat, Lng: center.Lng}), 0.01)
	assert.GreaterOrEqual(t, HaversineKm(center, models.Point{Lat: center.Lat, Lng: maxLng}), 1.99)
}

func TestBoundingBox_Poles(t *testing.T) {
	_, maxLat, minLng, maxLng := BoundingBox(models.Point{Lat: 90, Lng: 0}, 1000)
	assert.Equal(t, 90.0, maxLat)
	assert.Equal(t, -180.0, minLng)
	assert.Equal(t, 180.0, maxLng)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 1.2, Round1(1.24))
	assert.Equal(t, 1.3, Round1(1.25))
	assert.False(t, math.IsNaN(Round1(0)))
}

func TestGeohashWithNeighbors(t *testing.T) {
	hashes := GeohashWithNeighbors(models.Point{Lat: 30.441, Lng: -84.298}, 6)
	assert.Len(t, hashes, 9)
	for _, h := range hashes {
		assert.Len(t, h, 6)
	}
	assert.Equal(t, EncodeGeohash(models.Point{Lat: 30.441, Lng: -84.298}, 6), hashes[0])
}
