package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidID is returned when an identifier does not match the
	// store's key format. Handlers treat it as a store failure, not a
	// missing entity.
	ErrInvalidID = errors.New("invalid entity id")
)
