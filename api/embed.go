// Package api carries the service's OpenAPI document.
package api

import _ "embed"

// OpenAPI is the OpenAPI 3 description of the HTTP surface.
//
//go:embed openapi.yaml
var OpenAPI []byte
