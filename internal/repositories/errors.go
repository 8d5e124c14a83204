package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers
// match them with errors.Is; messages wrapping them add entity context.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned when a guarded stock decrement
	// finds fewer units than requested, including the case where a
	// concurrent order drained the stock between validation and commit.
	ErrInsufficientStock = errors.New("insufficient stock")
)
