package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// CoordinateRule holds the closed-interval limits a coordinate must satisfy.
type CoordinateRule struct {
	LatLimit float64
	LonLimit float64
}

var (
	// DefaultRule accepts latitudes and longitudes in [-180, 180].
	DefaultRule = CoordinateRule{LatLimit: 180, LonLimit: 180}

	// StrictRule restricts latitude to the geographic range [-90, 90].
	StrictRule = CoordinateRule{LatLimit: 90, LonLimit: 180}
)

// decimalLiteral matches plain decimal numbers: no hex, no Infinity/NaN, no underscores.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsCoordinate reports whether v has the shape of a coordinate under DefaultRule.
func IsCoordinate(v any) bool {
	_, ok := DefaultRule.Parse(v)
	return ok
}

// Parse validates a decoded JSON value and returns the coordinate it describes.
// v must be an object with "lat" and "lon" keys holding numbers or numeric strings.
func (r CoordinateRule) Parse(v any) (Coordinate, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Coordinate{}, false
	}
	return r.ParsePair(obj["lat"], obj["lon"])
}

// ParsePair validates a loose latitude/longitude pair.
// Zero is a valid value; missing, empty, null and boolean values are not.
func (r CoordinateRule) ParsePair(lat, lon any) (Coordinate, bool) {
	latF, ok := parseNumber(lat)
	if !ok {
		return Coordinate{}, false
	}
	lonF, ok := parseNumber(lon)
	if !ok {
		return Coordinate{}, false
	}
	if math.Abs(latF) > r.LatLimit || math.Abs(lonF) > r.LonLimit {
		return Coordinate{}, false
	}
	return Coordinate{Lat: latF, Lon: lonF}, true
}

// RangeText renders the accepted range for error messages.
func (r CoordinateRule) RangeText() string {
	if r.LatLimit == r.LonLimit {
		return fmt.Sprintf("(-%s < lat/lon < %s)", formatLimit(r.LatLimit), formatLimit(r.LatLimit))
	}
	return fmt.Sprintf("(-%s < lat < %s, -%s < lon < %s)",
		formatLimit(r.LatLimit), formatLimit(r.LatLimit),
		formatLimit(r.LonLimit), formatLimit(r.LonLimit))
}

func formatLimit(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		return parseNumericString(string(n))
	case string:
		return parseNumericString(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseNumericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
