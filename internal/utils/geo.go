package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/lastmile/internal/pkg/models"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in kilometers
func HaversineKm(p1, p2 models.Point) float64 {
	lat1 := p1.Lat * math.Pi / 180.0
	lon1 := p1.Lng * math.Pi / 180.0
	lat2 := p2.Lat * math.Pi / 180.0
	lon2 := p2.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// HaversineMeters returns the great-circle distance in meters
func HaversineMeters(p1, p2 models.Point) float64 {
	return HaversineKm(p1, p2) * 1000
}

// BoundingBox returns the lat/lng box enclosing a circle of radiusM around
// center. It is a cheap prefilter; callers still apply the exact distance.
func BoundingBox(center models.Point, radiusM float64) (minLat, maxLat, minLng, maxLng float64) {
	dLat := (radiusM / 1000 / earthRadiusKm) * 180 / math.Pi
	minLat = math.Max(center.Lat-dLat, -90)
	maxLat = math.Min(center.Lat+dLat, 90)

	cosLat := math.Cos(center.Lat * math.Pi / 180)
	if cosLat < 1e-6 {
		return minLat, maxLat, -180, 180
	}
	dLng := dLat / cosLat
	minLng = center.Lng - dLng
	maxLng = center.Lng + dLng
	if minLng < -180 || maxLng > 180 {
		// box crosses the antimeridian
		return minLat, maxLat, -180, 180
	}
	return minLat, maxLat, minLng, maxLng
}

// RouteOverlapScore scores how similar two routes are, in [0,100].
// Identical routes score 100 and the score decays with the summed
// origin and destination distances.
func RouteOverlapScore(originA, destA, originB, destB models.Point) float64 {
	d := HaversineKm(originA, originB) + HaversineKm(destA, destB)
	return 100 * math.Exp(-d/5)
}

// BuddyScore combines route overlap with the mean rating of the candidate.
// A missing rating contributes nothing.
func BuddyScore(routeOverlap float64, meanRating *float64) float64 {
	trust := 0.0
	if meanRating != nil {
		trust = math.Min(100, 20*(*meanRating))
	}
	return Round1(0.7*routeOverlap + 0.3*trust)
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// EncodeGeohash converts a point to a geohash string
func EncodeGeohash(p models.Point, precision uint) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lng, precision)
}

// GeohashWithNeighbors returns the geohash of p and its eight neighbours
func GeohashWithNeighbors(p models.Point, precision uint) []string {
	hash := EncodeGeohash(p, precision)
	return append([]string{hash}, geohash.Neighbors(hash)...)
}
