package remote

import "errors"

var (
	// ErrRejected means the service answered but reported success=false.
	ErrRejected = errors.New("remote operation rejected")
	// ErrNotFound is returned by Fetch on HTTP 404.
	ErrNotFound = errors.New("remote entity not found")
)
