package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/schedule"
)

// DefaultSheet is the worksheet name used when XLSX.Sheet is empty.
const DefaultSheet = "Cronograma"

// columnWidths matches Columns.
var columnWidths = []float64{6, 28, 36, 36, 18, 48, 10}

// XLSX writes rows as a single-sheet workbook.
type XLSX struct {
	Sheet string
}

func (x *XLSX) Write(w io.Writer, rows []schedule.Row) error {
	sheet := x.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	body, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("body style: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if err := setRow(f, sheet, 1, Columns); err != nil {
		return err
	}
	last, _ := excelize.ColumnNumberToName(len(Columns))
	if err := f.SetCellStyle(sheet, "A1", last+"1", header); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, r := range rows {
		if err := setRow(f, sheet, i+2, xlsxRecord(r)); err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		end := fmt.Sprintf("%s%d", last, len(rows)+1)
		if err := f.SetCellStyle(sheet, "A2", end, body); err != nil {
			return fmt.Errorf("apply body style: %w", err)
		}
	}

	return f.Write(w)
}

// xlsxRecord is Record with Dia kept numeric.
func xlsxRecord(r schedule.Row) []any {
	rec := Record(r)
	out := make([]any, len(rec))
	out[0] = r.Day
	for i := 1; i < len(rec); i++ {
		out[i] = rec[i]
	}
	return out
}

func setRow[T any](f *excelize.File, sheet string, row int, values []T) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
