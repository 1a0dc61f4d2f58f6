package session

import "errors"

// Sentinel errors returned by Session operations. Use errors.Is to test.
var (
	// ErrEmptyText is returned when submitted text is empty or whitespace.
	ErrEmptyText = errors.New("text is empty")

	// ErrNotFound is returned for an unknown goal, step, item, scenario or
	// notification ID.
	ErrNotFound = errors.New("not found")

	// ErrNoSimulation is returned when a simulation operation runs with no
	// active scenario.
	ErrNoSimulation = errors.New("no active simulation")

	// ErrInvalidInput is returned when a record fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
