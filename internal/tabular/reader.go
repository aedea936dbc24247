package tabular

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoColumns         = errors.New("no columns to parse from file")
)

type Options struct {
	// HeaderRow is the zero-based row holding column names. Rows above it
	// are ignored.
	HeaderRow int
}

// cell keeps the raw text next to its coerced value: headers need the
// former, data rows the latter.
type cell struct {
	raw   string
	value domain.Value
}

func textCell(raw string) cell {
	return cell{raw: raw, value: domain.ParseValue(raw)}
}

// Supported reports whether files with the given extension (with or
// without the leading dot) can be parsed.
func Supported(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "csv", "xlsx", "xls":
		return true
	default:
		return false
	}
}

// Read parses the file at path into a table, choosing the format by
// extension.
func Read(path string, opts Options) (*domain.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".csv":
		return readCSVFile(path, opts)
	case ".xlsx":
		return readXLSX(path, opts)
	case ".xls":
		return readXLS(path, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// fromGrid turns raw rows into a table. In strict mode rows wider than the
// header are an error, otherwise extra columns get generated names.
func fromGrid(grid [][]cell, opts Options, strict bool) (*domain.Table, error) {
	if opts.HeaderRow < 0 || opts.HeaderRow >= len(grid) {
		return nil, ErrNoColumns
	}

	header := grid[opts.HeaderRow]
	data := grid[opts.HeaderRow+1:]

	width := len(header)
	for i, row := range data {
		if len(row) <= width {
			continue
		}
		if strict {
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", width, opts.HeaderRow+i+2, len(row))
		}
		width = len(row)
	}

	if width == 0 {
		return nil, ErrNoColumns
	}

	headers := make([]string, width)
	for i := range header {
		headers[i] = header[i].raw
	}

	rows := make([][]domain.Value, 0, len(data))
	for _, row := range data {
		if blank(row) {
			continue
		}

		values := make([]domain.Value, len(row))
		for i, c := range row {
			values[i] = c.value
		}
		rows = append(rows, values)
	}

	return domain.NewTable(headers, rows), nil
}

func blank(row []cell) bool {
	for _, c := range row {
		if !c.value.IsMissing() {
			return false
		}
	}
	return true
}
