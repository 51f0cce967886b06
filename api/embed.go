// Package api carries the OpenAPI document of the HTTP surface. The server
// types in internal/generated/servers mirror it; a route test keeps the two
// in step.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
