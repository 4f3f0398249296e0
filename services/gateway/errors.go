package gateway

import (
	"encoding/json"
	"fmt"
)

// genericFailure is surfaced when a failing response carries no usable
// message field.
const genericFailure = "Request failed"

// APIError is a non-success response from a marketplace endpoint. Message
// is the server-supplied message when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// errorMessage extracts the server's message or error field from a failure
// body, falling back to generic text.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return genericFailure
}
