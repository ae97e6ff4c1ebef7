package schedule

// weeklyPass closes the week of every subject that is due, in subject order.
func (s *Session) weeklyPass() {
	for i, st := range s.states {
		if !st.weeklyDue(s.cfg.WeeklyBlocks) {
			continue
		}
		days := st.closeWeek()
		s.appendRow(Row{
			Kind:       KindWeeklyReview,
			Subject:    s.subjects[i].Name,
			ReviewDays: days,
		})
		s.stats.WeeklyReviews++
		s.stats.Subjects[i].WeeklyReviews++
		s.log.Debug().
			Str("subject", s.subjects[i].Name).
			Ints("days", days).
			Int("day", len(s.rows)).
			Msg("weekly review")
	}
}

// monthlyPass runs the monthly review round once every subject is ready.
// All subjects are reset, including those with nothing to review.
func (s *Session) monthlyPass() {
	for _, st := range s.states {
		if !st.monthlyReady(s.cfg.MonthlyWeeklies) {
			return
		}
	}

	for i, st := range s.states {
		days := st.closeMonth()
		if len(days) == 0 {
			continue
		}
		s.appendRow(Row{
			Kind:       KindMonthlyReview,
			Subject:    s.subjects[i].Name,
			ReviewDays: days,
		})
		s.stats.MonthlyReviews++
		s.stats.Subjects[i].MonthlyReviews++
		s.log.Debug().
			Str("subject", s.subjects[i].Name).
			Ints("days", days).
			Int("day", len(s.rows)).
			Msg("monthly review")
	}
}
