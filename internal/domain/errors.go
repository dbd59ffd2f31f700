package domain

import "errors"

// Sentinel errors shared across the service and handler layers. The store
// itself never returns these; it reports absence and leaves mapping to
// status codes to the caller.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)
