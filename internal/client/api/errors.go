package api

import (
	"fmt"
	"net/http"
)

// ServerError is a response with a non-2xx status.
type ServerError struct {
	Status     int
	StatusText string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Server error: %d - %s", e.Status, e.StatusText)
}

func newServerError(status int) *ServerError {
	return &ServerError{Status: status, StatusText: http.StatusText(status)}
}

// NetworkError means the request was sent but no response came back.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Network error: No response received. Please check your internet connection."
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RequestError means the request could not be built or the response body
// could not be read.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return "Request error: " + e.Err.Error()
}

func (e *RequestError) Unwrap() error { return e.Err }
