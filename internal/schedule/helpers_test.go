package schedule

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/duration"
)

// uniformSubject returns a subject with n lessons of secs seconds each.
func uniformSubject(name string, n, secs int) Subject {
	subj := Subject{Name: name}
	for i := 0; i < n; i++ {
		subj.Lessons = append(subj.Lessons, NewLesson(
			name,
			fmt.Sprintf("%s aula %d", name, i+1),
			fmt.Sprintf("%s sub %d", name, i+1),
			fmt.Sprintf("%s-v%d", name, i+1),
			fmt.Sprintf("Videoaula %d", i+1),
			duration.Format(secs),
		))
	}
	return subj
}

// checkInvariants verifies the properties every finished schedule must hold.
func checkInvariants(t *testing.T, subjects []Subject, res *Result, cfg Config) {
	t.Helper()

	for i, r := range res.Rows {
		if r.Day != i+1 {
			t.Fatalf("row %d has Day %d", i, r.Day)
		}
	}

	for _, subj := range subjects {
		var titles []string
		var weekDays, monthDays []int

		for _, r := range res.Rows {
			if r.Subject != subj.Name {
				continue
			}
			switch r.Kind {
			case KindLessonBlock:
				if r.LessonCount > 1 && r.Seconds > cfg.BlockLimit {
					t.Errorf("%s day %d: %d lessons take %ds, over limit %d",
						subj.Name, r.Day, r.LessonCount, r.Seconds, cfg.BlockLimit)
				}
				if r.LessonCount == 0 {
					t.Errorf("%s day %d: empty block", subj.Name, r.Day)
				}
				titles = append(titles, strings.Split(r.Titles, "\n")...)
				weekDays = append(weekDays, r.Day)
			case KindWeeklyReview:
				if !equalInts(r.ReviewDays, weekDays) {
					t.Errorf("%s weekly day %d reviews %v, want %v", subj.Name, r.Day, r.ReviewDays, weekDays)
				}
				if len(r.ReviewDays) > cfg.WeeklyBlocks {
					t.Errorf("%s weekly day %d covers %d blocks", subj.Name, r.Day, len(r.ReviewDays))
				}
				monthDays = append(monthDays, weekDays...)
				weekDays = nil
			case KindMonthlyReview:
				if !equalInts(r.ReviewDays, monthDays) {
					t.Errorf("%s monthly day %d reviews %v, want %v", subj.Name, r.Day, r.ReviewDays, monthDays)
				}
				monthDays = nil
			}
		}

		if len(weekDays) != 0 {
			t.Errorf("%s: blocks %v never got a weekly review", subj.Name, weekDays)
		}
		if len(monthDays) != 0 {
			t.Errorf("%s: days %v never got a monthly review", subj.Name, monthDays)
		}

		if len(titles) != len(subj.Lessons) {
			t.Fatalf("%s: %d lessons scheduled, want %d", subj.Name, len(titles), len(subj.Lessons))
		}
		for i, l := range subj.Lessons {
			if titles[i] != l.Title {
				t.Errorf("%s: lesson %d is %q, want %q", subj.Name, i, titles[i], l.Title)
			}
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func kinds(rows []Row) []RowKind {
	out := make([]RowKind, len(rows))
	for i, r := range rows {
		out[i] = r.Kind
	}
	return out
}
