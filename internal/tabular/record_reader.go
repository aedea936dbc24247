package tabular

import (
	"io"
	"time"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

// RecordReader yields table rows as string records, the shape expected by
// csvutil decoders. Dates are rendered as RFC 3339.
type RecordReader struct {
	table *domain.Table
	next  int
}

func NewRecordReader(table *domain.Table) *RecordReader {
	return &RecordReader{table: table}
}

func (r *RecordReader) Read() ([]string, error) {
	if r.next >= len(r.table.Rows) {
		return nil, io.EOF
	}

	row := r.table.Rows[r.next]
	r.next++

	record := make([]string, len(row))
	for i, v := range row {
		if v.Kind == domain.KindDate {
			record[i] = v.Time.Format(time.RFC3339)
			continue
		}
		record[i] = v.String()
	}

	return record, nil
}
