package schedule

import "errors"

var (
	// ErrNothingToSchedule is returned when no subjects are supplied.
	ErrNothingToSchedule = errors.New("nothing to schedule")

	// ErrDuplicateSubject is returned when two subjects share a name.
	ErrDuplicateSubject = errors.New("duplicate subject")

	// ErrInvalidLimit is returned for non-positive thresholds.
	ErrInvalidLimit = errors.New("invalid schedule limit")
)
