package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode classifies a transport failure for callers that do not want
// to switch on raw HTTP statuses.
type ErrorCode string

const (
	CodeBadRequest   ErrorCode = "BAD_REQUEST"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeConflict     ErrorCode = "CONFLICT"
	CodeServerError  ErrorCode = "SERVER_ERROR"
	CodeNetwork      ErrorCode = "NETWORK_ERROR"
)

// APIError is a failed HTTP exchange enriched with the status code and
// whatever message the backend provided. It is surfaced to the caller
// as-is; there are no retries behind it.
type APIError struct {
	Status  int
	Code    ErrorCode
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error %d (%s)", e.Status, e.Code)
	}
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

func codeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	default:
		if status >= 500 {
			return CodeServerError
		}
		return CodeBadRequest
	}
}

// newAPIError builds an APIError from a response body, pulling the
// backend message out of the common {"message": ...} / {"error": ...}
// shapes when present.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Code: codeForStatus(status)}
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			apiErr.Message = envelope.Message
		} else if envelope.Error != "" {
			apiErr.Message = envelope.Error
		}
	}
	if apiErr.Message == "" && len(body) > 0 && len(body) < 512 {
		apiErr.Message = string(body)
	}
	return apiErr
}
