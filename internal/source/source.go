// Package source reads subject lesson lists from ';'-separated CSV files.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/schedule"
)

// Column headers expected in every subject file.
const (
	ColTitle      = "Aula"
	ColSubtitle   = "Subtítulo"
	ColVideo      = "Vídeo"
	ColVideoLabel = "Videoaula"
	ColDuration   = "Duração"
)

var requiredColumns = []string{ColTitle, ColSubtitle, ColVideo, ColVideoLabel, ColDuration}

var (
	// ErrMissingColumn is returned when a required header is absent.
	ErrMissingColumn = errors.New("missing column")

	// ErrInvalidDuration is returned in strict mode for malformed durations.
	ErrInvalidDuration = errors.New("invalid duration")
)

// DurationError reports a malformed duration cell.
type DurationError struct {
	Subject string
	Line    int
	Text    string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("%s line %d: duration %q is not mm:ss or hh:mm:ss", e.Subject, e.Line, e.Text)
}

func (e *DurationError) Unwrap() error {
	return ErrInvalidDuration
}

// Spec names one subject file. An empty Name is derived from Path.
type Spec struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Options controls parsing.
type Options struct {
	// Comma is the field separator.
	Comma rune
	// Strict turns malformed durations into errors instead of zero-length
	// lessons.
	Strict bool
}

// DefaultOptions returns the ';'-separated, permissive setup.
func DefaultOptions() Options {
	return Options{Comma: ';'}
}

// Issue is a malformed duration that was read as zero seconds.
type Issue struct {
	Subject string
	Line    int
	Lesson  string
	Text    string
}

// Report collects what LoadAll tolerated.
type Report struct {
	Issues []Issue
	// Duplicates lists files skipped because their subject name was
	// already loaded.
	Duplicates []string
}

// SubjectName derives a subject name from a file path: its base name
// without the extension.
func SubjectName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadAll loads every spec in order. Later files whose subject name is
// already taken are skipped and listed in the report.
func LoadAll(specs []Spec, opts Options) ([]schedule.Subject, *Report, error) {
	report := &Report{}
	seen := make(map[string]bool, len(specs))
	var subjects []schedule.Subject

	for _, sp := range specs {
		name := sp.Name
		if name == "" {
			name = SubjectName(sp.Path)
		}
		if seen[name] {
			report.Duplicates = append(report.Duplicates, sp.Path)
			continue
		}

		subj, issues, err := LoadFile(Spec{Name: name, Path: sp.Path}, opts)
		if err != nil {
			return nil, nil, err
		}
		seen[name] = true
		subjects = append(subjects, subj)
		report.Issues = append(report.Issues, issues...)
	}
	return subjects, report, nil
}

// LoadFile reads one subject file.
func LoadFile(sp Spec, opts Options) (schedule.Subject, []Issue, error) {
	f, err := os.Open(sp.Path)
	if err != nil {
		return schedule.Subject{}, nil, fmt.Errorf("open subject file: %w", err)
	}
	defer f.Close()

	name := sp.Name
	if name == "" {
		name = SubjectName(sp.Path)
	}
	subj, issues, err := Read(f, name, opts)
	if err != nil {
		return schedule.Subject{}, nil, fmt.Errorf("%s: %w", sp.Path, err)
	}
	return subj, issues, nil
}

// Read parses CSV lessons for the subject called name.
func Read(r io.Reader, name string, opts Options) (schedule.Subject, []Issue, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	if cr.Comma == 0 {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return schedule.Subject{}, nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return schedule.Subject{}, nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return schedule.Subject{}, nil, err
	}

	subj := schedule.Subject{Name: name}
	var issues []Issue
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return schedule.Subject{}, nil, fmt.Errorf("read lesson: %w", err)
		}
		line, _ := cr.FieldPos(0)

		field := func(col string) string {
			i := cols[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		l := schedule.NewLesson(name,
			field(ColTitle),
			field(ColSubtitle),
			field(ColVideo),
			field(ColVideoLabel),
			field(ColDuration),
		)
		if !l.DurationValid {
			if opts.Strict {
				return schedule.Subject{}, nil, &DurationError{Subject: name, Line: line, Text: l.DurationText}
			}
			issues = append(issues, Issue{Subject: name, Line: line, Lesson: l.Title, Text: l.DurationText})
		}
		subj.Lessons = append(subj.Lessons, l)
	}
	return subj, issues, nil
}

func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}
