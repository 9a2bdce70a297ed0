package router

import "errors"

// Router errors.
var (
	// ErrReservedPath indicates a dynamic route reuses a constant route path.
	ErrReservedPath = errors.New("router: path reserved by constant route")

	// ErrPathConflict indicates two routes compile to the same pattern.
	ErrPathConflict = errors.New("router: conflicting route pattern")

	// ErrFetchFailed indicates the backend reported an unsuccessful fetch.
	ErrFetchFailed = errors.New("router: async route fetch unsuccessful")
)
