package http_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/samirrijal/isonwater/api"
)

// TestOpenAPISpec validates the embedded OpenAPI document and its route coverage.
func TestOpenAPISpec(t *testing.T) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: false}
	spec, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		t.Fatalf("failed to parse OpenAPI spec: %v", err)
	}

	if err := spec.Validate(context.Background()); err != nil {
		t.Fatalf("OpenAPI spec validation failed: %v", err)
	}

	expected := map[string][]string{
		"/":        {"GET", "POST"},
		"/health":  {"GET"},
		"/ready":   {"GET"},
		"/metrics": {"GET"},
		"/graphql": {"POST"},
	}
	for path, methods := range expected {
		item := spec.Paths.Find(path)
		if item == nil {
			t.Errorf("missing path %s", path)
			continue
		}
		for _, m := range methods {
			if item.GetOperation(m) == nil {
				t.Errorf("missing %s %s", m, path)
			}
		}
	}
}
