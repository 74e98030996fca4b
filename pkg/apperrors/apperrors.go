package apperrors

import "errors"

// Storage-level sentinels returned by repositories from inside their
// transaction scope. Services translate these into module business errors.
var (
	// ErrDuplicateKey signals a uniqueness check failed (floor number,
	// room number within a floor, seat number within a room).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrHasDependents signals a delete was blocked because child records
	// still reference the target (rooms on a floor, seats in a room,
	// assignments on a seat).
	ErrHasDependents = errors.New("record has dependent records")

	// ErrNotAssigned signals an unassign for a pair that is not currently
	// assigned.
	ErrNotAssigned = errors.New("assignment does not exist")
)
