package storage

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("storage: not found")

	// ErrAlreadyGraded is returned when a prediction result update
	// targets a prediction that already has a terminal result.
	ErrAlreadyGraded = errors.New("storage: prediction already graded")

	// ErrLockHeld is returned when another engine run holds the lock for
	// the same date range.
	ErrLockHeld = errors.New("storage: run lock held")
)
