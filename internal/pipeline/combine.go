package pipeline

import "github.com/kurochkinivan/sheet_analyzer/internal/domain"

// Combine concatenates the parsed tables whose column set matches the
// first one. Tables with other columns are left out of the combined view.
func Combine(results []*domain.ParseResult) *domain.Table {
	if len(results) == 0 {
		return domain.NewTable(nil, nil)
	}

	combined := results[0].Table
	for _, r := range results[1:] {
		if combined.SameColumns(r.Table) {
			combined = combined.Concat(r.Table)
		}
	}

	return combined
}
