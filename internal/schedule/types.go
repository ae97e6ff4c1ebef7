package schedule

import (
	"strconv"
	"strings"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/duration"
)

// Lesson is one video lesson read from a subject's list.
type Lesson struct {
	Subject      string
	Title        string
	Subtitle     string
	Video        string
	VideoLabel   string
	DurationText string

	// Seconds is DurationText parsed by the duration codec.
	Seconds int
	// DurationValid is false when DurationText was malformed and Seconds
	// fell back to zero.
	DurationValid bool
}

// NewLesson builds a Lesson and parses its duration text.
func NewLesson(subject, title, subtitle, video, videoLabel, durationText string) Lesson {
	secs, ok := duration.ParseChecked(durationText)
	return Lesson{
		Subject:       subject,
		Title:         title,
		Subtitle:      subtitle,
		Video:         video,
		VideoLabel:    videoLabel,
		DurationText:  durationText,
		Seconds:       secs,
		DurationValid: ok,
	}
}

// Subject is a named, ordered list of lessons.
type Subject struct {
	Name    string
	Lessons []Lesson
}

// RowKind distinguishes lesson blocks from review entries.
type RowKind int

const (
	KindLessonBlock RowKind = iota
	KindWeeklyReview
	KindMonthlyReview
)

func (k RowKind) String() string {
	switch k {
	case KindLessonBlock:
		return "lesson_block"
	case KindWeeklyReview:
		return "weekly_review"
	case KindMonthlyReview:
		return "monthly_review"
	default:
		return "unknown"
	}
}

const (
	weeklyLabelPrefix  = "Revisão Semanal - "
	monthlyLabelPrefix = "Revisão Mensal - "
	reviewNotePrefix   = "Revisar dias: "
)

// Row is one day of the timetable.
type Row struct {
	// Day is the 1-based position of the row in the final schedule.
	Day     int
	Kind    RowKind
	Subject string

	// Lesson block fields. Each holds one entry per lesson, newline
	// separated, except Videos which is comma separated.
	Titles      string
	Subtitles   string
	Videos      string
	VideoLabels string
	Duration    string
	Seconds     int
	LessonCount int

	// ReviewDays lists the days a review row points back to.
	ReviewDays []int
}

// IsReview reports whether r is a weekly or monthly review.
func (r Row) IsReview() bool {
	return r.Kind == KindWeeklyReview || r.Kind == KindMonthlyReview
}

// Label is the subject column text.
func (r Row) Label() string {
	switch r.Kind {
	case KindWeeklyReview:
		return weeklyLabelPrefix + r.Subject
	case KindMonthlyReview:
		return monthlyLabelPrefix + r.Subject
	default:
		return r.Subject
	}
}

// Note is the video-lesson column text: the per-lesson labels for a block,
// or the list of days to revisit for a review.
func (r Row) Note() string {
	if !r.IsReview() {
		return r.VideoLabels
	}
	return reviewNotePrefix + JoinDays(r.ReviewDays)
}

// JoinDays renders day indices as "1, 3, 5".
func JoinDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}
