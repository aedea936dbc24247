package pipeline

import (
	"fmt"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

const (
	savingsRatio = 0.12
	roiRatio     = 12.5 / 100
	breakeven    = "14 Months"

	mediumRiskRows = 1000
	highRiskRows   = 10000
)

// Summary holds the per-table figures shown in summaries and previews.
type Summary struct {
	TotalRows      int
	NumericColumns []string
	AvgValues      map[string]float64
}

// Aggregates are computed over every numeric column of a table.
// HasNumeric is false when the table has no numeric column, in which case
// the other fields are zero.
type Aggregates struct {
	HasNumeric bool
	TotalSum   float64
	Average    float64
	Min        float64
	Max        float64
}

type columnStats struct {
	sum, min, max float64
	count         int
}

func (s columnStats) mean() float64 {
	return s.sum / float64(s.count)
}

func statsOf(values []domain.Value) columnStats {
	var s columnStats
	for _, v := range values {
		if !v.IsNumber() {
			continue
		}

		if s.count == 0 || v.Num < s.min {
			s.min = v.Num
		}
		if s.count == 0 || v.Num > s.max {
			s.max = v.Num
		}

		s.sum += v.Num
		s.count++
	}
	return s
}

func Summarize(table *domain.Table) Summary {
	numeric := table.NumericColumns()

	s := Summary{
		TotalRows:      table.Len(),
		NumericColumns: make([]string, 0, len(numeric)),
		AvgValues:      make(map[string]float64, len(numeric)),
	}

	for _, c := range numeric {
		name := table.Headers[c]
		s.NumericColumns = append(s.NumericColumns, name)

		// JSON has no representation for overflowed means
		if mean := statsOf(table.Column(c)).mean(); finite(mean) {
			s.AvgValues[name] = mean
		}
	}

	return s
}

func Aggregate(table *domain.Table) Aggregates {
	numeric := table.NumericColumns()
	if len(numeric) == 0 {
		return Aggregates{}
	}

	agg := Aggregates{HasNumeric: true}
	var meanSum float64

	for i, c := range numeric {
		s := statsOf(table.Column(c))

		if i == 0 || s.min < agg.Min {
			agg.Min = s.min
		}
		if i == 0 || s.max > agg.Max {
			agg.Max = s.max
		}

		agg.TotalSum += s.sum
		meanSum += s.mean()
	}

	agg.Average = meanSum / float64(len(numeric))

	return agg
}

func Savings(agg Aggregates) string {
	savings := agg.TotalSum * savingsRatio
	if !agg.HasNumeric || savings <= 0 || !finite(savings) {
		return "$0"
	}

	whole, _ := big.NewFloat(math.RoundToEven(savings)).Int(nil)
	return "$" + humanize.BigComma(whole)
}

func ROI(agg Aggregates) string {
	if !agg.HasNumeric || agg.Average <= 0 || !finite(agg.Average) {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", agg.Average*roiRatio)
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func RiskFor(rows int) domain.Risk {
	switch {
	case rows < mediumRiskRows:
		return domain.RiskLow
	case rows < highRiskRows:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}

func RecommendationFor(risk domain.Risk) domain.RecommendationType {
	if risk == domain.RiskLow {
		return domain.RecommendationApproved
	}
	return domain.RecommendationReview
}

func metricsOf(summary Summary, agg Aggregates, totalRows int) domain.Metrics {
	return domain.Metrics{
		Savings:        Savings(agg),
		ROI:            ROI(agg),
		Risk:           RiskFor(totalRows),
		Breakeven:      breakeven,
		TotalRows:      totalRows,
		NumericColumns: len(summary.NumericColumns),
		AvgValues:      summary.AvgValues,
	}
}

func FileSummaryOf(name string, table *domain.Table) domain.FileSummary {
	return domain.FileSummary{
		File:           name,
		Rows:           table.Len(),
		Columns:        table.Width(),
		NumericColumns: len(table.NumericColumns()),
	}
}
