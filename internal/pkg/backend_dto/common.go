package backend_dto

import "github.com/goccy/go-json"

// Envelope carries the fields every backend response may set, success or not.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorType string          `json:"errorType,omitempty"`
	Errors    json.RawMessage `json:"errors,omitempty"`
}
