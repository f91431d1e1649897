package domain

// Coordinate represents a geographic coordinate (WGS 84).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bounds represents a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Extend grows b so that it covers o. A zero Bounds is treated as empty.
func (b Bounds) Extend(o Bounds) Bounds {
	if b == (Bounds{}) {
		return o
	}
	return Bounds{
		MinLat: min(b.MinLat, o.MinLat),
		MinLon: min(b.MinLon, o.MinLon),
		MaxLat: max(b.MaxLat, o.MaxLat),
		MaxLon: max(b.MaxLon, o.MaxLon),
	}
}
