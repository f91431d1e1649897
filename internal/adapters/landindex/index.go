// Package landindex loads a land-boundary GeoJSON dataset into an immutable
// spatial index answering point-in-land queries.
package landindex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dhconnelly/rtreego"
	"github.com/klauspost/compress/gzip"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/samirrijal/isonwater/internal/core/domain"
)

// ErrNoPolygons is returned when a dataset holds no polygonal geometry.
var ErrNoPolygons = errors.New("landindex: dataset contains no polygons")

// R-tree branching factors.
const (
	minChildren = 25
	maxChildren = 50
)

// queryTolerance is the half-width of the rectangle used to probe the tree for a point.
const queryTolerance = 1e-9

// landPolygon is a single land polygon stored in the R-tree.
type landPolygon struct {
	poly orb.Polygon
	rect rtreego.Rect
}

func (p *landPolygon) Bounds() rtreego.Rect { return p.rect }

// Index is an immutable point-in-land index. It is safe for concurrent use.
type Index struct {
	tree  *rtreego.Rtree
	stats domain.LandStats
}

// Load reads a GeoJSON dataset from path. Files ending in ".gz" are decompressed.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip dataset: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return Decode(r, path)
}

// Decode builds an index from a GeoJSON FeatureCollection, Feature or Geometry.
func Decode(r io.Reader, source string) (*Index, error) {
	start := time.Now()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	geoms, err := decodeGeometries(data)
	if err != nil {
		return nil, err
	}

	ix, err := build(source, geoms)
	if err != nil {
		return nil, err
	}
	ix.stats.LoadDuration = time.Since(start)
	return ix, nil
}

// New builds an index from in-memory geometries. Non-polygonal geometries are ignored.
func New(source string, geoms ...orb.Geometry) (*Index, error) {
	start := time.Now()
	ix, err := build(source, geoms)
	if err != nil {
		return nil, err
	}
	ix.stats.LoadDuration = time.Since(start)
	return ix, nil
}

// Contains reports whether any land polygon contains the point.
func (ix *Index) Contains(lat, lon float64) bool {
	pt := orb.Point{lon, lat}
	probe := rtreego.Point{lon, lat}.ToRect(queryTolerance)

	for _, s := range ix.tree.SearchIntersect(probe) {
		if planar.PolygonContains(s.(*landPolygon).poly, pt) {
			return true
		}
	}
	return false
}

// Stats describes the loaded dataset.
func (ix *Index) Stats() domain.LandStats {
	return ix.stats
}

func decodeGeometries(data []byte) ([]orb.Geometry, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse feature collection: %w", err)
		}
		geoms := make([]orb.Geometry, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f.Geometry != nil {
				geoms = append(geoms, f.Geometry)
			}
		}
		return geoms, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("parse feature: %w", err)
		}
		if f.Geometry == nil {
			return nil, nil
		}
		return []orb.Geometry{f.Geometry}, nil
	case "":
		return nil, fmt.Errorf("parse dataset: missing GeoJSON type in %q", preview(data))
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("parse geometry: %w", err)
		}
		return []orb.Geometry{g.Geometry()}, nil
	}
}

func build(source string, geoms []orb.Geometry) (*Index, error) {
	var polys []orb.Polygon
	for _, g := range geoms {
		polys = appendPolygons(polys, g)
	}
	if len(polys) == 0 {
		return nil, ErrNoPolygons
	}

	stats := domain.LandStats{Source: source}
	items := make([]rtreego.Spatial, 0, len(polys))
	for _, p := range polys {
		b := p.Bound()
		rect, err := rtreego.NewRectFromPoints(
			rtreego.Point{b.Min[0], b.Min[1]},
			rtreego.Point{b.Max[0], b.Max[1]},
		)
		if err != nil {
			return nil, fmt.Errorf("polygon bounds: %w", err)
		}
		items = append(items, &landPolygon{poly: p, rect: rect})

		stats.Polygons++
		for _, ring := range p {
			stats.Vertices += len(ring)
		}
		stats.Bounds = stats.Bounds.Extend(domain.Bounds{
			MinLat: b.Min[1], MinLon: b.Min[0],
			MaxLat: b.Max[1], MaxLon: b.Max[0],
		})
	}

	return &Index{
		tree:  rtreego.NewTree(2, minChildren, maxChildren, items...),
		stats: stats,
	}, nil
}

func appendPolygons(dst []orb.Polygon, g orb.Geometry) []orb.Polygon {
	switch v := g.(type) {
	case orb.Polygon:
		if len(v) > 0 && len(v[0]) > 0 {
			dst = append(dst, v)
		}
	case orb.MultiPolygon:
		for _, p := range v {
			dst = appendPolygons(dst, p)
		}
	case orb.Collection:
		for _, c := range v {
			dst = appendPolygons(dst, c)
		}
	}
	return dst
}

func preview(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) > 40 {
		data = data[:40]
	}
	return string(data)
}
