package domain

import (
	"time"
)

// Classification is the water/land answer for one coordinate.
type Classification struct {
	Water bool    `json:"water"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// LandStats describes a loaded land index.
type LandStats struct {
	Source       string        `json:"source"`
	Polygons     int           `json:"polygons"`
	Vertices     int           `json:"vertices"`
	Bounds       Bounds        `json:"bounds"`
	LoadDuration time.Duration `json:"load_duration_ns"`
}
