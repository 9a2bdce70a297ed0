package transport

import (
	"errors"
	"fmt"
)

// Transport errors.
var (
	// ErrDecode indicates the response body was not valid JSON for the target type.
	ErrDecode = errors.New("transport: decode response")

	// ErrResponseTooLarge indicates the response body exceeded max_response_size.
	ErrResponseTooLarge = errors.New("transport: response too large")
)

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("transport: %s %s: status %d", e.Method, e.Path, e.Code)
}
