package tabular

import (
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

func readXLS(path string, opts Options) (_ *domain.Table, err error) {
	// the BIFF decoder panics on some malformed workbooks
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to decode workbook: %v", r)
		}
	}()

	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}

	grid := make([][]cell, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}

		cells := make([]cell, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			cells = append(cells, textCell(row.Col(c)))
		}
		grid = append(grid, cells)
	}

	return fromGrid(grid, opts, false)
}

// xlsRow returns nil for rows absent from the file, which WorkSheet.Row
// dereferences without checking.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()

	return sheet.Row(i)
}
