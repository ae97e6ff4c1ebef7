// Package export writes a finished schedule as a spreadsheet, CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/schedule"
)

// Columns is the header of every tabular output.
var Columns = []string{"Dia", "Matéria", "Aula", "Subtítulo", "Vídeo", "Videoaula", "Duração"}

// ErrUnknownFormat is returned for an output format with no sink.
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an output encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Sink encodes rows to w.
type Sink interface {
	Write(w io.Writer, rows []schedule.Row) error
}

// Record returns the column values of r in Columns order.
func Record(r schedule.Row) []string {
	if r.IsReview() {
		return []string{strconv.Itoa(r.Day), r.Label(), "", "", "", r.Note(), ""}
	}
	return []string{
		strconv.Itoa(r.Day),
		r.Label(),
		r.Titles,
		r.Subtitles,
		r.Videos,
		r.Note(),
		r.Duration,
	}
}

// FormatFor returns format when set, otherwise the format implied by the
// extension of path.
func FormatFor(path string, format string) (Format, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch f := Format(strings.ToLower(format)); f {
	case FormatXLSX, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// New returns the sink for f. sheet names the worksheet for xlsx output.
func New(f Format, sheet string) (Sink, error) {
	switch f {
	case FormatXLSX:
		return &XLSX{Sheet: sheet}, nil
	case FormatCSV:
		return &CSV{Comma: ';'}, nil
	case FormatJSON:
		return &JSON{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteFile encodes rows with sink into a new file at path.
func WriteFile(path string, sink Sink, rows []schedule.Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := sink.Write(f, rows); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}

// CSV writes rows as delimiter-separated text with a header line.
type CSV struct {
	Comma rune
}

func (c *CSV) Write(w io.Writer, rows []schedule.Row) error {
	cw := csv.NewWriter(w)
	if c.Comma != 0 {
		cw.Comma = c.Comma
	}
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(Record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSON writes rows as an array of objects keyed by column name.
type JSON struct {
	Indent string
}

type jsonRow struct {
	Day        int    `json:"dia"`
	Kind       string `json:"tipo"`
	Subject    string `json:"materia"`
	Titles     string `json:"aula,omitempty"`
	Subtitles  string `json:"subtitulo,omitempty"`
	Videos     string `json:"video,omitempty"`
	Note       string `json:"videoaula"`
	Duration   string `json:"duracao,omitempty"`
	ReviewDays []int  `json:"dias_revisao,omitempty"`
}

func (j *JSON) Write(w io.Writer, rows []schedule.Row) error {
	out := make([]jsonRow, len(rows))
	for i, r := range rows {
		out[i] = jsonRow{
			Day:        r.Day,
			Kind:       r.Kind.String(),
			Subject:    r.Label(),
			Titles:     r.Titles,
			Subtitles:  r.Subtitles,
			Videos:     r.Videos,
			Note:       r.Note(),
			Duration:   r.Duration,
			ReviewDays: r.ReviewDays,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	return enc.Encode(out)
}
