// Package stops holds the read-only transit stop catalog used by the matcher
// and walking guidance.
package stops

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/internal/utils"
)

// precision 6 cells are roughly 1.2 km x 0.6 km, so a cell plus its
// neighbours always covers lookups of a few hundred meters
const bucketPrecision = 6

// Catalog is an immutable, geohash-bucketed set of stops
type Catalog struct {
	byID    map[string]models.Stop
	ordered []models.Stop
	buckets map[string][]models.Stop
}

// Load reads a JSON array of stops from path. A missing file yields an
// empty catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("Stop catalog not found, continuing without stops", logger.String("path", path))
			return New(nil), nil
		}
		return nil, fmt.Errorf("failed to read stop catalog: %w", err)
	}

	var list []models.Stop
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse stop catalog: %w", err)
	}

	logger.Info("Loaded stop catalog", logger.String("path", path), logger.Int("stops", len(list)))
	return New(list), nil
}

// New builds a catalog from list. Entries with an empty id or invalid
// coordinates are skipped.
func New(list []models.Stop) *Catalog {
	c := &Catalog{
		byID:    make(map[string]models.Stop, len(list)),
		buckets: make(map[string][]models.Stop),
	}
	for _, s := range list {
		if s.ID == "" || !s.Point().Valid() {
			continue
		}
		if _, dup := c.byID[s.ID]; dup {
			continue
		}
		c.byID[s.ID] = s
		c.ordered = append(c.ordered, s)
		hash := utils.EncodeGeohash(s.Point(), bucketPrecision)
		c.buckets[hash] = append(c.buckets[hash], s)
	}
	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].ID < c.ordered[j].ID })
	return c
}

// Get returns the stop with id
func (c *Catalog) Get(id string) (models.Stop, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// All returns every stop ordered by id
func (c *Catalog) All() []models.Stop {
	out := make([]models.Stop, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of stops
func (c *Catalog) Len() int { return len(c.ordered) }

// Nearest returns the closest stop within radiusM of p
func (c *Catalog) Nearest(p models.Point, radiusM float64) (models.Stop, bool) {
	var (
		best  models.Stop
		bestD = radiusM
		found bool
	)
	for _, hash := range utils.GeohashWithNeighbors(p, bucketPrecision) {
		for _, s := range c.buckets[hash] {
			d := utils.HaversineMeters(p, s.Point())
			if d <= bestD {
				best, bestD, found = s, d, true
			}
		}
	}
	return best, found
}
