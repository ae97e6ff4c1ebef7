package schedule

import "testing"

func lessonsOf(name string, secs ...int) Subject {
	subj := Subject{Name: name}
	for i, s := range secs {
		l := uniformSubject(name, i+1, s).Lessons[i]
		subj.Lessons = append(subj.Lessons, l)
	}
	return subj
}

func TestBuildBlock_FillsUpToLimit(t *testing.T) {
	subj := lessonsOf("Física", 3000, 3300, 60)
	st := &SubjectState{}

	row, ok := buildBlock(&subj, st, DefaultBlockLimit)
	if !ok {
		t.Fatal("expected a block")
	}
	if row.LessonCount != 2 {
		t.Errorf("LessonCount = %d, want 2", row.LessonCount)
	}
	if row.Seconds != 6300 || row.Duration != "01:45:00" {
		t.Errorf("duration = %d %q, want 6300 01:45:00", row.Seconds, row.Duration)
	}
	if st.Cursor != 2 || st.Finished {
		t.Errorf("cursor = %d finished = %v, want 2 false", st.Cursor, st.Finished)
	}

	row, ok = buildBlock(&subj, st, DefaultBlockLimit)
	if !ok || row.LessonCount != 1 {
		t.Fatalf("second block: ok=%v lessons=%d", ok, row.LessonCount)
	}
	if !st.Finished {
		t.Error("expected subject to be finished")
	}

	if _, ok := buildBlock(&subj, st, DefaultBlockLimit); ok {
		t.Error("expected no block once exhausted")
	}
}

func TestBuildBlock_OversizedLessonStandsAlone(t *testing.T) {
	subj := lessonsOf("Química", 100, 8000, 100)
	st := &SubjectState{}

	want := []int{1, 1, 1}
	for i, n := range want {
		row, ok := buildBlock(&subj, st, DefaultBlockLimit)
		if !ok {
			t.Fatalf("block %d: expected a row", i)
		}
		if row.LessonCount != n {
			t.Errorf("block %d: LessonCount = %d, want %d", i, row.LessonCount, n)
		}
	}
	if !st.Finished {
		t.Error("expected subject to be finished")
	}
}

func TestBuildBlock_EmptySubject(t *testing.T) {
	subj := Subject{Name: "Vazio"}
	st := &SubjectState{}

	if _, ok := buildBlock(&subj, st, DefaultBlockLimit); ok {
		t.Error("expected no block for an empty subject")
	}
	if !st.Finished {
		t.Error("empty subject should finish immediately")
	}
}

func TestBuildBlock_Aggregation(t *testing.T) {
	subj := Subject{Name: "Biologia", Lessons: []Lesson{
		NewLesson("Biologia", "Aula 1", "Células", "101", "Intro", "20:00"),
		NewLesson("Biologia", "Aula 2", "Tecidos", "102", "Parte 2", "00:30:15"),
	}}
	st := &SubjectState{}

	row, _ := buildBlock(&subj, st, DefaultBlockLimit)

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"Titles", row.Titles, "Aula 1\nAula 2"},
		{"Subtitles", row.Subtitles, "Células\nTecidos"},
		{"Videos", row.Videos, "101, 102"},
		{"VideoLabels", row.VideoLabels, "Intro (20:00)\nParte 2 (00:30:15)"},
		{"Duration", row.Duration, "00:50:15"},
		{"Label", row.Label(), "Biologia"},
		{"Note", row.Note(), "Intro (20:00)\nParte 2 (00:30:15)"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if row.Kind != KindLessonBlock {
		t.Errorf("Kind = %v, want lesson_block", row.Kind)
	}
}

func TestBuildBlock_MalformedDurationCountsAsZero(t *testing.T) {
	subj := Subject{Name: "Artes", Lessons: []Lesson{
		NewLesson("Artes", "A", "", "1", "x", "01:45:00"),
		NewLesson("Artes", "B", "", "2", "y", "??"),
	}}
	st := &SubjectState{}

	row, _ := buildBlock(&subj, st, DefaultBlockLimit)

	if row.LessonCount != 2 {
		t.Errorf("LessonCount = %d, want 2 (zero-length lesson fits)", row.LessonCount)
	}
	if subj.Lessons[1].DurationValid {
		t.Error("expected malformed duration to be flagged")
	}
}
