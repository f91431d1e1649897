package ports

import (
	"github.com/samirrijal/isonwater/internal/core/domain"
)

// LandIndex answers point-in-land queries against a prebuilt, read-only dataset.
// Implementations must be safe for concurrent use without external locking.
type LandIndex interface {
	Contains(lat, lon float64) bool
	Stats() domain.LandStats
}
