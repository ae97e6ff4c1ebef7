package store

import (
	"context"
	"time"
)

// QueryOpts configures run queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // created_at >= From
	To    time.Time // created_at <= To
}

// Run records one completed schedule generation.
type Run struct {
	ID               string
	CreatedAt        time.Time
	Subjects         []string
	Lessons          int
	InvalidDurations int
	LessonBlocks     int
	WeeklyReviews    int
	MonthlyReviews   int
	Rows             int
	Rounds           int
	TotalSeconds     int
	OutputPath       string
}

// RunRepo stores the history of generated schedules.
type RunRepo interface {
	// Append records a run.
	Append(ctx context.Context, run Run) error

	// Recent returns runs newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]Run, error)

	// Get returns the run with the given id, or nil if none exists.
	Get(ctx context.Context, id string) (*Run, error)
}
