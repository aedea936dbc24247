package pipeline

import "github.com/kurochkinivan/sheet_analyzer/internal/domain"

const (
	singlePreviewRows = 5
	batchPreviewRows  = 10
)

// Preview renders at most limit rows as text keyed by header. Missing
// values become empty strings.
func Preview(table *domain.Table, limit int) domain.TableData {
	head := table.Head(limit)

	rows := make([]map[string]string, 0, head.Len())
	for _, row := range head.Rows {
		rendered := make(map[string]string, len(row))
		for i, v := range row {
			rendered[head.Headers[i]] = v.String()
		}
		rows = append(rows, rendered)
	}

	headers := table.Headers
	if headers == nil {
		headers = []string{}
	}

	return domain.TableData{
		Headers: headers,
		Rows:    rows,
	}
}
