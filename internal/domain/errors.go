package domain

import "errors"

var (
	// ErrNotFound signals a missing product.
	ErrNotFound = errors.New("not found")
	// ErrStore signals a catalog transport or query failure.
	ErrStore = errors.New("catalog store error")
	// ErrInvalidRequest signals malformed caller input.
	ErrInvalidRequest = errors.New("invalid request")
)
