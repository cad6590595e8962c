package client

import (
	"fmt"
	"net/http"
)

// ServerError is a response the server completed with a non-2xx status.
type ServerError struct {
	StatusCode int
	RequestID  int64
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
}

// IsInvalid reports whether the server rejected the input.
func (e *ServerError) IsInvalid() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsNotFound reports whether the word has no definition.
func (e *ServerError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// NetworkError is a request that never completed, as opposed to one the server rejected.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request could not be completed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
