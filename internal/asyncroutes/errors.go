package asyncroutes

import (
	"errors"
	"net/http"
)

// Domain errors for async route operations.
var (
	ErrNotFound       = errors.New("async route not found")
	ErrDuplicate      = errors.New("async route name or path already exists")
	ErrReserved       = errors.New("async route uses a reserved path or name")
	ErrInvalid        = errors.New("invalid async route")
	ErrParentNotFound = errors.New("parent async route not found")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrReserved) || errors.Is(err, ErrInvalid) || errors.Is(err, ErrParentNotFound) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
