package tabular

import (
	"errors"
	"fmt"
	"math"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/xuri/excelize/v2"
)

var dateNumFmt = "yyyy-mm-dd hh:mm:ss"

type Sheet struct {
	Name  string
	Table *domain.Table
}

type WriteOptions struct {
	// Placeholder is written in place of missing values. Empty leaves the
	// cell blank.
	Placeholder string
}

// WriteWorkbook writes every sheet, in order, into a new xlsx file at path.
// Sheet names are sanitised with SheetNames.
func WriteWorkbook(path string, sheets []Sheet, opts WriteOptions) (err error) {
	if len(sheets) == 0 {
		return errors.New("no sheets to write")
	}

	f := excelize.NewFile()
	defer func() { err = errors.Join(err, f.Close()) }()

	w, err := newSheetWriter(f, opts)
	if err != nil {
		return err
	}

	raw := make([]string, len(sheets))
	for i, s := range sheets {
		raw[i] = s.Name
	}
	names := SheetNames(raw)

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), names[i]); err != nil {
				return fmt.Errorf("failed to rename sheet %q: %w", names[i], err)
			}
		} else if _, err := f.NewSheet(names[i]); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", names[i], err)
		}

		if err := w.write(names[i], s.Table); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", names[i], err)
		}
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

type sheetWriter struct {
	f           *excelize.File
	placeholder string
	headerStyle int
	dateStyle   int
}

func newSheetWriter(f *excelize.File, opts WriteOptions) (*sheetWriter, error) {
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateNumFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create date style: %w", err)
	}

	return &sheetWriter{
		f:           f,
		placeholder: opts.Placeholder,
		headerStyle: headerStyle,
		dateStyle:   dateStyle,
	}, nil
}

func (w *sheetWriter) write(sheet string, t *domain.Table) error {
	sw, err := w.f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = excelize.Cell{StyleID: w.headerStyle, Value: h}
	}

	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		name, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}

		values := make([]any, len(row))
		for c, v := range row {
			values[c] = w.cellValue(v)
		}

		if err := sw.SetRow(name, values); err != nil {
			return err
		}
	}

	return sw.Flush()
}

func (w *sheetWriter) cellValue(v domain.Value) any {
	switch v.Kind {
	case domain.KindNumber:
		switch {
		case math.IsInf(v.Num, 1):
			return "inf"
		case math.IsInf(v.Num, -1):
			return "-inf"
		case !math.IsNaN(v.Num):
			return v.Num
		}
	case domain.KindText:
		return v.Text
	case domain.KindDate:
		return excelize.Cell{StyleID: w.dateStyle, Value: v.Time}
	}

	if w.placeholder == "" {
		return nil
	}
	return w.placeholder
}
