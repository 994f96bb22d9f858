// Package servers holds the HTTP contract of the ordering API: the OpenAPI
// document in openapi.json, the request and response types, and the echo
// routing for ServerInterface. All of it is maintained by hand and must be
// kept in step with openapi.json.
package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.json
var specJSON []byte

// SpecJSON returns the raw OpenAPI document.
func SpecJSON() []byte {
	out := make([]byte, len(specJSON))
	copy(out, specJSON)
	return out
}

// GetSwagger returns the parsed OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(specJSON)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}

	return swagger, nil
}
