package schedule

// SubjectState is the per-subject bookkeeping for one scheduling session.
type SubjectState struct {
	// Cursor is the index of the next lesson to schedule. It never moves back.
	Cursor int
	// Finished is set once Cursor reaches the end of the lesson list.
	Finished bool

	// WeeklyBlocks counts blocks since the last weekly review.
	WeeklyBlocks int
	// WeekDays holds the days of those blocks, in creation order.
	WeekDays []int

	// MonthDays accumulates WeekDays across weekly reviews until the next
	// monthly review.
	MonthDays []int
	// WeeklyReviews counts weekly reviews since the last monthly review.
	WeeklyReviews int
}

// recordBlock notes a lesson block placed on day.
func (st *SubjectState) recordBlock(day int) {
	st.WeeklyBlocks++
	st.WeekDays = append(st.WeekDays, day)
}

// weeklyDue reports whether the subject needs a weekly review now: a full
// week of blocks, or a finished subject with blocks still unreviewed.
func (st *SubjectState) weeklyDue(weeklyBlocks int) bool {
	return st.WeeklyBlocks >= weeklyBlocks || (st.Finished && st.WeeklyBlocks > 0)
}

// closeWeek resets the weekly counters and returns the days to review.
// The days carry over into the monthly accumulator.
func (st *SubjectState) closeWeek() []int {
	days := st.WeekDays
	st.MonthDays = append(st.MonthDays, days...)
	st.WeeklyBlocks = 0
	st.WeekDays = nil
	st.WeeklyReviews++
	return days
}

// monthlyReady reports whether this subject lets the monthly barrier pass.
func (st *SubjectState) monthlyReady(monthlyWeeklies int) bool {
	return st.Finished || st.WeeklyReviews >= monthlyWeeklies
}

// closeMonth resets the monthly counters and returns the days to review,
// which may be empty.
func (st *SubjectState) closeMonth() []int {
	days := st.MonthDays
	st.MonthDays = nil
	st.WeeklyReviews = 0
	return days
}
