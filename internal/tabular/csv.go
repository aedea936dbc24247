package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func readCSVFile(path string, opts Options) (_ *domain.Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return ReadCSV(f, opts)
}

// ReadCSV parses comma separated data. Blank lines are skipped and short
// rows are padded with missing values.
func ReadCSV(r io.Reader, opts Options) (*domain.Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, fmt.Errorf("failed to skip byte order mark: %w", err)
		}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	grid := make([][]cell, len(records))
	for i, record := range records {
		grid[i] = make([]cell, len(record))
		for j, raw := range record {
			grid[i][j] = textCell(raw)
		}
	}

	return fromGrid(grid, opts, true)
}
