package gateway

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// APIError is a non-2xx answer from the clinic backend.
type APIError struct {
	Status    int
	Path      string
	Message   string
	ErrorType string
	Fields    map[string]string
	Body      []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s responded %d: %s", e.Path, e.Status, e.Message)
}

// HasDetails reports whether the body carried a message or field errors.
func (e *APIError) HasDetails() bool {
	return e.Message != "" || len(e.Fields) > 0
}

// AsAPIError finds the backend answer behind err. Transport failures and timeouts have none.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusOf returns the backend status behind err, or 0.
func StatusOf(err error) int {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return 0
	}
	return apiErr.Status
}

type errorEnvelope struct {
	Message   string          `json:"message"`
	Error     string          `json:"error"`
	ErrorType string          `json:"errorType"`
	Errors    json.RawMessage `json:"errors"`
}

func parseAPIError(status int, path string, body []byte) *APIError {
	apiErr := &APIError{
		Status: status,
		Path:   path,
		Body:   body,
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}

	apiErr.Message = envelope.Message
	if apiErr.Message == "" {
		apiErr.Message = envelope.Error
	}
	apiErr.ErrorType = envelope.ErrorType
	apiErr.Fields = parseFieldErrors(envelope.Errors)
	return apiErr
}

// parseFieldErrors accepts a field map, a list of {field|path, message} objects, or a list of strings.
func parseFieldErrors(raw json.RawMessage) map[string]string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var byField map[string]interface{}
	if err := json.Unmarshal(raw, &byField); err == nil {
		fields := make(map[string]string, len(byField))
		for name, value := range byField {
			switch v := value.(type) {
			case string:
				fields[name] = v
			case []interface{}:
				if len(v) > 0 {
					fields[name] = fmt.Sprint(v[0])
				}
			}
		}
		return nonEmpty(fields)
	}

	var list []struct {
		Field   string      `json:"field"`
		Path    interface{} `json:"path"`
		Message string      `json:"message"`
	}
	if err := json.Unmarshal(raw, &list); err == nil {
		fields := make(map[string]string, len(list))
		for _, item := range list {
			name := item.Field
			if name == "" {
				name = pathName(item.Path)
			}
			if name == "" || item.Message == "" {
				continue
			}
			if _, exists := fields[name]; !exists {
				fields[name] = item.Message
			}
		}
		return nonEmpty(fields)
	}

	var messages []string
	if err := json.Unmarshal(raw, &messages); err == nil && len(messages) > 0 {
		return map[string]string{"_": messages[0]}
	}
	return nil
}

func pathName(path interface{}) string {
	switch p := path.(type) {
	case string:
		return p
	case []interface{}:
		if len(p) > 0 {
			return fmt.Sprint(p[len(p)-1])
		}
	}
	return ""
}

func nonEmpty(fields map[string]string) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	return fields
}
