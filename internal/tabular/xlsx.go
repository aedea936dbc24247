package tabular

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/xuri/excelize/v2"
)

var (
	// quoted literals, escaped characters and bracketed sections such as
	// colours, locales or elapsed time markers
	numFmtNoise   = regexp.MustCompile(`"[^"]*"|\\.|\[[^\]]*\]`)
	numFmtDateTok = regexp.MustCompile(`[ydhs]`)
)

func readXLSX(path string, opts Options) (_ *domain.Table, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	dates := newDateDetector(f, sheet)

	grid := make([][]cell, len(rows))
	for r, row := range rows {
		grid[r] = make([]cell, len(row))
		for c, raw := range row {
			grid[r][c] = cell{raw: raw, value: dates.value(c+1, r+1, raw)}
		}
	}

	return fromGrid(grid, opts, false)
}

// dateDetector converts numeric cells carrying a date number format into
// date values. Results are cached per style index.
type dateDetector struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func newDateDetector(f *excelize.File, sheet string) *dateDetector {
	d := &dateDetector{
		f:      f,
		sheet:  sheet,
		styles: make(map[int]bool),
	}

	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}

	return d
}

func (d *dateDetector) value(col, row int, raw string) domain.Value {
	v := domain.ParseValue(raw)
	if !v.IsNumber() {
		return v
	}

	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return v
	}

	styleID, err := d.f.GetCellStyle(d.sheet, name)
	if err != nil || !d.isDateStyle(styleID) {
		return v
	}

	t, err := excelize.ExcelDateToTime(v.Num, d.date1904)
	if err != nil {
		return v
	}

	return domain.Date(t)
}

func (d *dateDetector) isDateStyle(styleID int) bool {
	if styleID == 0 {
		return false
	}

	if cached, ok := d.styles[styleID]; ok {
		return cached
	}

	isDate := false
	if style, err := d.f.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateFormat(style.NumFmt, style.CustomNumFmt)
	}

	d.styles[styleID] = isDate

	return isDate
}

func isDateFormat(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		format := strings.ToLower(numFmtNoise.ReplaceAllString(*custom, ""))
		return numFmtDateTok.MatchString(format)
	}

	switch {
	case numFmt >= 14 && numFmt <= 22,
		numFmt >= 27 && numFmt <= 36,
		numFmt >= 45 && numFmt <= 47,
		numFmt >= 50 && numFmt <= 58:
		return true
	default:
		return false
	}
}
