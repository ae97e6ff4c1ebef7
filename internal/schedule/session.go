package schedule

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Option configures a Session.
type Option func(*Session)

// WithConfig replaces the default thresholds.
func WithConfig(cfg Config) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithLogger sets the logger used for per-row debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Session interleaves subjects round-robin into a timetable. It is not safe
// for concurrent use.
type Session struct {
	cfg      Config
	log      zerolog.Logger
	subjects []Subject
	states   []*SubjectState
	rows     []Row
	rounds   int
	stats    Stats
}

// NewSession validates the subject list and prepares one state per subject.
// Subjects are scheduled in the order given.
func NewSession(subjects []Subject, opts ...Option) (*Session, error) {
	if len(subjects) == 0 {
		return nil, ErrNothingToSchedule
	}

	s := &Session{
		cfg: DefaultConfig(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(subjects))
	s.stats.Subjects = make([]SubjectStats, len(subjects))
	for i, subj := range subjects {
		if seen[subj.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSubject, subj.Name)
		}
		seen[subj.Name] = true
		s.stats.Subjects[i].Name = subj.Name
		for _, l := range subj.Lessons {
			s.stats.Lessons++
			if !l.DurationValid {
				s.stats.InvalidDurations++
			}
		}
	}

	s.subjects = subjects
	s.states = make([]*SubjectState, len(subjects))
	for i := range s.states {
		s.states[i] = &SubjectState{}
	}
	return s, nil
}

// Done reports whether every subject is finished.
func (s *Session) Done() bool {
	for _, st := range s.states {
		if !st.Finished {
			return false
		}
	}
	return true
}

// State returns the bookkeeping for the i-th subject.
func (s *Session) State(i int) *SubjectState {
	return s.states[i]
}

// Rows returns a copy of the rows emitted so far.
func (s *Session) Rows() []Row {
	rows := make([]Row, len(s.rows))
	copy(rows, s.rows)
	return rows
}

// Round runs one round: a block for every active subject, then the weekly
// reviews, then the monthly barrier. It is a no-op once Done.
func (s *Session) Round() {
	if s.Done() {
		return
	}
	s.rounds++

	for i := range s.subjects {
		st := s.states[i]
		if st.Finished {
			continue
		}
		row, ok := buildBlock(&s.subjects[i], st, s.cfg.BlockLimit)
		if !ok {
			continue
		}
		s.appendRow(row)
		st.recordBlock(len(s.rows))

		s.stats.LessonBlocks++
		s.stats.Seconds += row.Seconds
		sub := &s.stats.Subjects[i]
		sub.Blocks++
		sub.Lessons += row.LessonCount
		sub.Seconds += row.Seconds

		s.log.Debug().
			Str("subject", row.Subject).
			Int("day", len(s.rows)).
			Int("lessons", row.LessonCount).
			Str("duration", row.Duration).
			Msg("lesson block")
	}

	s.weeklyPass()
	s.monthlyPass()
}

// Run rounds until every subject is finished and returns the numbered
// schedule.
func (s *Session) Run() *Result {
	for !s.Done() {
		s.Round()
	}

	rows := make([]Row, len(s.rows))
	copy(rows, s.rows)
	for i := range rows {
		rows[i].Day = i + 1
	}
	s.stats.Rows = len(rows)

	s.log.Debug().
		Int("rounds", s.rounds).
		Int("rows", len(rows)).
		Msg("schedule complete")

	return &Result{
		ID:     uuid.New(),
		Rows:   rows,
		Rounds: s.rounds,
		Stats:  s.stats,
	}
}

// appendRow adds r as the next day. A row's day is its position at
// insertion; rows are never reordered, so it is also its final Day.
func (s *Session) appendRow(r Row) {
	r.Day = len(s.rows) + 1
	s.rows = append(s.rows, r)
}

// Build schedules subjects in one call.
func Build(subjects []Subject, opts ...Option) (*Result, error) {
	s, err := NewSession(subjects, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}
