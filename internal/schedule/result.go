package schedule

import "github.com/google/uuid"

// Result is a finished timetable.
type Result struct {
	ID     uuid.UUID
	Rows   []Row
	Rounds int
	Stats  Stats
}

// Stats summarises a Result.
type Stats struct {
	Lessons          int
	InvalidDurations int
	LessonBlocks     int
	WeeklyReviews    int
	MonthlyReviews   int
	Rows             int
	Seconds          int
	Subjects         []SubjectStats
}

// SubjectStats summarises one subject of a Result.
type SubjectStats struct {
	Name           string
	Blocks         int
	Lessons        int
	Seconds        int
	WeeklyReviews  int
	MonthlyReviews int
}

// SubjectNames returns the subject names in scheduling order.
func (r *Result) SubjectNames() []string {
	names := make([]string, len(r.Stats.Subjects))
	for i, s := range r.Stats.Subjects {
		names[i] = s.Name
	}
	return names
}
