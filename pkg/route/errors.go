package route

import "errors"

// Route validation errors.
var (
	ErrEmptyPath      = errors.New("route: empty path")
	ErrInvalidPattern = errors.New("route: invalid pattern")
	ErrDuplicateName  = errors.New("route: duplicate name")
	ErrWildcardOrder  = errors.New("route: wildcard route must be last among siblings")
)
