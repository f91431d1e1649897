package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samirrijal/isonwater/internal/core/domain"
)

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func postGraphQL(t *testing.T, query string) gqlResponse {
	t.Helper()
	app := setupApp(newLand())

	payload, _ := json.Marshal(map[string]string{"query": query})
	req := httptest.NewRequest("POST", "/graphql", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")

	resp, body := do(t, app, req)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var out gqlResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestGraphQL_IsOnWater(t *testing.T) {
	out := postGraphQL(t, `{ isOnWater(lat: 40.7128, lon: -74.006) { water lat lon } }`)
	if len(out.Errors) > 0 {
		t.Fatalf("unexpected errors: %+v", out.Errors)
	}
	var got domain.Classification
	if err := json.Unmarshal(out.Data["isOnWater"], &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != (domain.Classification{Water: false, Lat: 40.7128, Lon: -74.006}) {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestGraphQL_IsOnWaterBatch(t *testing.T) {
	out := postGraphQL(t, `{ isOnWaterBatch(points: [{lat: 40.7128, lon: -74.006}, {lat: 0, lon: -40}]) { water } }`)
	if len(out.Errors) > 0 {
		t.Fatalf("unexpected errors: %+v", out.Errors)
	}
	if got := string(out.Data["isOnWaterBatch"]); got != `[{"water":false},{"water":true}]` {
		t.Errorf("unexpected result %s", got)
	}
}

func TestGraphQL_RejectsOutOfRange(t *testing.T) {
	out := postGraphQL(t, `{ isOnWaterBatch(points: [{lat: 1, lon: 1}, {lat: 500, lon: 0}]) { water } }`)
	if len(out.Errors) != 1 {
		t.Fatalf("expected one error, got %+v", out.Errors)
	}
	if out.Errors[0].Message != bodyMsg {
		t.Errorf("unexpected error %q", out.Errors[0].Message)
	}
}

func TestGraphQL_Land(t *testing.T) {
	out := postGraphQL(t, `{ land { source polygons vertices } }`)
	var got domain.LandStats
	if err := json.Unmarshal(out.Data["land"], &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Source != "mock" || got.Polygons != 2 || got.Vertices != 10 {
		t.Errorf("unexpected result %+v", got)
	}
}
