package schedule

import (
	"strings"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/duration"
)

// buildBlock takes consecutive lessons from the subject's cursor until the
// next one would push the block past limit. The first lesson of a block is
// always taken, even when it alone exceeds limit. It returns false only
// when the subject had no lessons left.
func buildBlock(subj *Subject, st *SubjectState, limit int) (Row, bool) {
	start := st.Cursor
	total := 0
	for st.Cursor < len(subj.Lessons) {
		secs := subj.Lessons[st.Cursor].Seconds
		if st.Cursor > start && total+secs > limit {
			break
		}
		total += secs
		st.Cursor++
	}
	if st.Cursor >= len(subj.Lessons) {
		st.Finished = true
	}
	if st.Cursor == start {
		return Row{}, false
	}
	return aggregate(subj.Name, subj.Lessons[start:st.Cursor]), true
}

func aggregate(subject string, lessons []Lesson) Row {
	titles := make([]string, len(lessons))
	subtitles := make([]string, len(lessons))
	videos := make([]string, len(lessons))
	labels := make([]string, len(lessons))
	total := 0
	for i, l := range lessons {
		titles[i] = l.Title
		subtitles[i] = l.Subtitle
		videos[i] = l.Video
		labels[i] = l.VideoLabel + " (" + l.DurationText + ")"
		total += l.Seconds
	}
	return Row{
		Kind:        KindLessonBlock,
		Subject:     subject,
		Titles:      strings.Join(titles, "\n"),
		Subtitles:   strings.Join(subtitles, "\n"),
		Videos:      strings.Join(videos, ", "),
		VideoLabels: strings.Join(labels, "\n"),
		Duration:    duration.Format(total),
		Seconds:     total,
		LessonCount: len(lessons),
	}
}
