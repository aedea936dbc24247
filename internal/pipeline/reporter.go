package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/kurochkinivan/sheet_analyzer/internal/tabular"
)

const (
	growthFactor = 1.1

	sheetOriginalData    = "Original Data"
	sheetSummaryMetrics  = "Summary Metrics"
	sheetProjectedGrowth = "Projected Growth"
	sheetFilesSummary    = "Files Summary"
	sheetCombinedData    = "Combined Data"
	sheetAnalysisResults = "Analysis Results"
)

func reportFilename(at time.Time) string {
	return fmt.Sprintf("Analysis_Report_%d.xlsx", at.Unix())
}

func summaryFilename(at time.Time) string {
	return fmt.Sprintf("Analysis_Summary_%d.pdf", at.Unix())
}

func downloadURL(filename string) string {
	return "/download/" + filepath.Base(filename)
}

func singleReportSheets(table *domain.Table, summary Summary) []tabular.Sheet {
	metrics := metricTable([][2]domain.Value{
		{domain.Text("Total Rows"), domain.Number(float64(summary.TotalRows))},
		{domain.Text("Numeric Columns"), domain.Number(float64(len(summary.NumericColumns)))},
	})
	for _, name := range summary.NumericColumns {
		avg := domain.Missing()
		if v, ok := summary.AvgValues[name]; ok {
			avg = domain.Number(v)
		}
		metrics.AppendRow([]domain.Value{domain.Text("Average " + name), avg})
	}

	sheets := []tabular.Sheet{
		{Name: sheetOriginalData, Table: table},
		{Name: sheetSummaryMetrics, Table: metrics},
	}

	if numeric := table.NumericColumns(); len(numeric) > 0 {
		sheets = append(sheets, tabular.Sheet{Name: sheetProjectedGrowth, Table: projected(table.Select(numeric))})
	}

	return sheets
}

func batchReportSheets(
	parsed []*domain.ParseResult,
	summaries []domain.FileSummary,
	combined *domain.Table,
	agg Aggregates,
	totalRows int,
) []tabular.Sheet {
	sheets := make([]tabular.Sheet, 0, len(parsed)+3)

	sheets = append(sheets,
		tabular.Sheet{Name: sheetFilesSummary, Table: summariesTable(summaries)},
		tabular.Sheet{Name: sheetCombinedData, Table: combined},
	)

	for _, r := range parsed {
		sheets = append(sheets, tabular.Sheet{Name: r.File.DisplayName(), Table: r.Table})
	}

	if agg.HasNumeric {
		sheets = append(sheets, tabular.Sheet{Name: sheetAnalysisResults, Table: metricTable([][2]domain.Value{
			{domain.Text("Total Rows"), domain.Number(float64(totalRows))},
			{domain.Text("Total Columns"), domain.Number(float64(combined.Width()))},
			{domain.Text("Sum"), domain.Number(agg.TotalSum)},
			{domain.Text("Average"), domain.Number(agg.Average)},
			{domain.Text("Min"), domain.Number(agg.Min)},
			{domain.Text("Max"), domain.Number(agg.Max)},
		})})
	}

	return sheets
}

func metricTable(rows [][2]domain.Value) *domain.Table {
	t := domain.NewTable([]string{"Metric", "Value"}, nil)
	for _, r := range rows {
		t.AppendRow(r[:])
	}
	return t
}

func summariesTable(summaries []domain.FileSummary) *domain.Table {
	t := domain.NewTable([]string{"file", "rows", "columns", "numeric_columns"}, nil)
	for _, s := range summaries {
		t.AppendRow([]domain.Value{
			domain.Text(s.File),
			domain.Number(float64(s.Rows)),
			domain.Number(float64(s.Columns)),
			domain.Number(float64(s.NumericColumns)),
		})
	}
	return t
}

// projected scales every number in an all-numeric table by growthFactor.
func projected(table *domain.Table) *domain.Table {
	out := domain.NewTable(table.Headers, nil)
	for _, row := range table.Rows {
		scaled := make([]domain.Value, len(row))
		for i, v := range row {
			if v.IsNumber() {
				v = domain.Number(v.Num * growthFactor)
			}
			scaled[i] = v
		}
		out.AppendRow(scaled)
	}
	return out
}
