package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/isonwater/internal/core/domain"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestIsCoordinate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"numeric strings", `{"lat":"40.7128","lon":"-74.0060"}`, true},
		{"numbers", `{"lat":40.7128,"lon":-74.006}`, true},
		{"zero string", `{"lat":"0","lon":"-40"}`, true},
		{"zero number", `{"lat":0,"lon":0}`, true},
		{"padded string", `{"lat":" 12.5 ","lon":"3"}`, true},
		{"bounds inclusive", `{"lat":180,"lon":-180}`, true},
		{"latitude quirk", `{"lat":"120","lon":"10"}`, true},
		{"extra keys", `{"lat":1,"lon":2,"name":"x"}`, true},
		{"exponent", `{"lat":"1e1","lon":"-2.5E0"}`, true},
		{"missing lon", `{"lat":"1"}`, false},
		{"empty lat", `{"lat":"","lon":"1"}`, false},
		{"null lat", `{"lat":null,"lon":"1"}`, false},
		{"bool lat", `{"lat":true,"lon":"1"}`, false},
		{"array lat", `{"lat":[1],"lon":"1"}`, false},
		{"garbage suffix", `{"lat":"12abc","lon":"1"}`, false},
		{"hex", `{"lat":"0x10","lon":"1"}`, false},
		{"infinity", `{"lat":"Infinity","lon":"1"}`, false},
		{"nan", `{"lat":"NaN","lon":"1"}`, false},
		{"overflow", `{"lat":"1e400","lon":"1"}`, false},
		{"lat out of range", `{"lat":180.0001,"lon":0}`, false},
		{"lon out of range", `{"lat":0,"lon":"-181"}`, false},
		{"not an object", `[1,2]`, false},
		{"string", `"40,-74"`, false},
		{"null", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsCoordinate(decode(t, tt.in)))
		})
	}
}

func TestCoordinateRule_ParseJSONNumber(t *testing.T) {
	var v any
	dec := json.NewDecoder(strings.NewReader(`{"lat":0,"lon":-40}`))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&v))

	c, ok := domain.DefaultRule.Parse(v)
	require.True(t, ok)
	assert.Equal(t, domain.Coordinate{Lat: 0, Lon: -40}, c)
}

func TestCoordinateRule_Strict(t *testing.T) {
	_, ok := domain.StrictRule.ParsePair("91", "10")
	assert.False(t, ok)

	_, ok = domain.DefaultRule.ParsePair("91", "10")
	assert.True(t, ok)

	c, ok := domain.StrictRule.ParsePair("-90", "180")
	require.True(t, ok)
	assert.Equal(t, -90.0, c.Lat)
}

func TestCoordinateRule_RangeText(t *testing.T) {
	assert.Equal(t, "(-180 < lat/lon < 180)", domain.DefaultRule.RangeText())
	assert.Equal(t, "(-90 < lat < 90, -180 < lon < 180)", domain.StrictRule.RangeText())
}

func TestBounds_Extend(t *testing.T) {
	b := domain.Bounds{}.Extend(domain.Bounds{MinLat: 1, MinLon: 2, MaxLat: 3, MaxLon: 4})
	b = b.Extend(domain.Bounds{MinLat: -1, MinLon: 3, MaxLat: 2, MaxLon: 10})
	assert.Equal(t, domain.Bounds{MinLat: -1, MinLon: 2, MaxLat: 3, MaxLon: 10}, b)
}
