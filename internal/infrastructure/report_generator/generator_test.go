package report_generator_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/kurochkinivan/sheet_analyzer/internal/infrastructure/report_generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateReport(t *testing.T) {
	t.Parallel()

	total := 12
	result := &domain.AnalysisResult{
		Status:         domain.StatusSuccess,
		FilesProcessed: 2,
		Metrics: domain.Metrics{
			Savings:        "$1,200",
			ROI:            "18.8%",
			Risk:           domain.RiskLow,
			Breakeven:      "14 Months",
			TotalRows:      12,
			NumericColumns: 1,
			AvgValues:      map[string]float64{"Value": 150},
		},
		Recommendation: domain.Recommendation{
			Type: domain.RecommendationApproved,
			Text: "Analyzed 2 file(s) with 12 total records.",
		},
		TableData: domain.TableData{
			Headers:   []string{"Data", "Value", "c", "d", "e", "f", "g"},
			Rows:      []map[string]string{{"Data": "Item 1", "Value": "100"}},
			TotalRows: &total,
		},
		FileSummaries: []domain.FileSummary{
			{File: "jan.csv", Rows: 6, Columns: 2, NumericColumns: 1},
			{File: "feb.csv", Rows: 6, Columns: 2, NumericColumns: 1},
		},
	}

	path := filepath.Join(t.TempDir(), "summary.pdf")

	err := report_generator.New().GenerateReport(path, result, time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(content) > 4 && string(content[:4]) == "%PDF")
}

func TestGenerator_GenerateReport_BadPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "summary.pdf")

	err := report_generator.New().GenerateReport(path, &domain.AnalysisResult{}, time.Now())
	require.Error(t, err)
}
