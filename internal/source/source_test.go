package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "\uFEFFAula;Subtítulo;Vídeo;Videoaula;Duração\n" +
	"Aula 1;Introdução;101;Boas-vindas;10:00\n" +
	"Aula 2;Cinemática;102;MRU;01:05:30\n" +
	"Aula 3;Cinemática;103;MRUV;sem tempo\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRead(t *testing.T) {
	subj, issues, err := Read(strings.NewReader(sample), "Física", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Física", subj.Name)
	require.Len(t, subj.Lessons, 3)

	l := subj.Lessons[1]
	assert.Equal(t, "Física", l.Subject)
	assert.Equal(t, "Aula 2", l.Title)
	assert.Equal(t, "Cinemática", l.Subtitle)
	assert.Equal(t, "102", l.Video)
	assert.Equal(t, "MRU", l.VideoLabel)
	assert.Equal(t, 3930, l.Seconds)
	assert.True(t, l.DurationValid)

	require.Len(t, issues, 1)
	assert.Equal(t, Issue{Subject: "Física", Line: 4, Lesson: "Aula 3", Text: "sem tempo"}, issues[0])
	assert.Zero(t, subj.Lessons[2].Seconds)
}

func TestRead_Strict(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict = true

	_, _, err := Read(strings.NewReader(sample), "Física", opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	var de *DurationError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 4, de.Line)
	assert.Equal(t, "sem tempo", de.Text)
}

func TestRead_MissingColumns(t *testing.T) {
	_, _, err := Read(strings.NewReader("Aula;Vídeo\nA;1\n"), "X", DefaultOptions())
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Subtítulo")

	_, _, err = Read(strings.NewReader(""), "X", DefaultOptions())
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestRead_ColumnOrderAndShortRows(t *testing.T) {
	in := "Duração;Videoaula;Vídeo;Subtítulo;Aula;Extra\n20:00;Label;7;Sub;Título\n"
	subj, _, err := Read(strings.NewReader(in), "X", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, subj.Lessons, 1)
	assert.Equal(t, "Título", subj.Lessons[0].Title)
	assert.Equal(t, 1200, subj.Lessons[0].Seconds)
}

func TestSubjectName(t *testing.T) {
	assert.Equal(t, "Matemática", SubjectName("/tmp/x/Matemática.csv"))
	assert.Equal(t, "notas", SubjectName("notas"))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "Física.csv", sample)
	b := writeFile(t, dir, "Química.csv", "Aula;Subtítulo;Vídeo;Videoaula;Duração\nQ1;S;1;L;05:00\n")
	other := filepath.Join(t.TempDir(), "Física.csv")
	require.NoError(t, os.WriteFile(other, []byte(sample), 0o644))

	subjects, report, err := LoadAll([]Spec{{Path: b}, {Path: a}, {Path: other}, {Name: "Extra", Path: b}}, DefaultOptions())
	require.NoError(t, err)

	names := make([]string, len(subjects))
	for i, s := range subjects {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Química", "Física", "Extra"}, names)
	assert.Equal(t, []string{other}, report.Duplicates)
	assert.Len(t, report.Issues, 1)
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := LoadFile(Spec{Path: filepath.Join(t.TempDir(), "nope.csv")}, DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
