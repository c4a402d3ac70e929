package storage

import "errors"

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert violates a uniqueness rule,
	// such as registering an email twice.
	ErrDuplicate = errors.New("already exists")
)
