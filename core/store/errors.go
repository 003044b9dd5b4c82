package store

import "errors"

var (
	// ErrDuplicateIdentity is returned when a flavor or market name already exists.
	ErrDuplicateIdentity = errors.New("already exists")
	// ErrInvalidName is returned when a flavor or market name is empty.
	ErrInvalidName = errors.New("name must not be empty")
	// ErrNotFound is returned when a referenced market or market event is missing.
	ErrNotFound = errors.New("not found")
	// ErrAllocationNotFound is returned when settling a flavor that was never allocated to the event.
	ErrAllocationNotFound = errors.New("no allocation record found for this flavor in the selected market event")
)
