package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// FallbackMessage is used when a failed response carries no message
const FallbackMessage = "Something went wrong"

// APIError is a failure reported by the backend
type APIError struct {
	Status  int
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody mirrors the backend's error envelope
type errorBody struct {
	Timestamp string         `json:"timestamp"`
	Status    int            `json:"status"`
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details"`
}

func decodeAPIError(status int, body []byte) (*APIError, error) {
	apiErr := &APIError{Status: status, Message: FallbackMessage}
	if len(bytes.TrimSpace(body)) == 0 {
		return apiErr, nil
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return nil, err
	}
	if eb.Message != "" {
		apiErr.Message = eb.Message
	}
	apiErr.Details = eb.Details
	return apiErr, nil
}

// UserMessage is the text to show for err: the backend's message verbatim, else fallback
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsNotFound reports a 404 from the backend
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
