package match

import "github.com/piresc/lastmile/internal/pkg/models"

// StopLocator answers "is this point near a known stop"
type StopLocator interface {
	Nearest(p models.Point, radiusM float64) (models.Stop, bool)
}
