package models

import "encoding/json"

// NoContentMessage is returned in place of an empty 2xx body
const NoContentMessage = "No Content: operation successful."

// ManagementRequest is the inbound envelope posted to /auth0-management.
// Parameters is either a JSON object or a JSON string encoding one.
type ManagementRequest struct {
	Action     string          `json:"action"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// ErrorResponse is the error envelope returned to callers
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a synthetic success message
type MessageResponse struct {
	Message string `json:"message"`
}
