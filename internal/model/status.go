// Package model contains the response and request shapes of the HTTP API.
// They are pure data structures; no behavior lives here.
package model

import "encoding/json"

// ServiceDescriptor is the static description returned by the root endpoint.
type ServiceDescriptor struct {
	Status             string   `json:"status" example:"online"`
	Version            string   `json:"version" example:"1.0"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// HealthStatus is the liveness probe body.
type HealthStatus struct {
	Status string `json:"status" example:"healthy"`
}

// TestMessage is returned by GET /test.
type TestMessage struct {
	Message string `json:"message" example:"GET request successful"`
}

// EchoResponse wraps an echoed JSON object. Data holds the compacted request
// body, so key order and number literals are preserved.
type EchoResponse struct {
	Message string          `json:"message" example:"POST request successful"`
	Data    json.RawMessage `json:"data" swaggertype:"object"`
}
