package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrijal/isonwater/internal/core/domain"
)

const fixture = "../../internal/adapters/landindex/testdata/land.geojson"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats", "--dataset", fixture)
	require.NoError(t, err)

	var stats domain.LandStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.Polygons)
	assert.Equal(t, fixture, stats.Source)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--dataset", fixture, "--lat", "40.7128", "--lon", "-74.0060")
	require.NoError(t, err)

	var got domain.Classification
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.Classification{Water: false, Lat: 40.7128, Lon: -74.006}, got)

	out, err = run(t, "check", "--dataset", fixture, "--lat", "0", "--lon", "-40")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Water)
}

func TestCheck_StrictRejectsLatitude(t *testing.T) {
	_, err := run(t, "check", "--dataset", fixture, "--strict-latitude", "--lat", "95", "--lon", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-90 < lat < 90")

	_, err = run(t, "check", "--dataset", fixture, "--lat", "95", "--lon", "0")
	require.NoError(t, err)
}

func TestCheck_MissingDataset(t *testing.T) {
	_, err := run(t, "check", "--dataset", "does-not-exist.geojson", "--lat", "1", "--lon", "1")
	require.Error(t, err)
}
