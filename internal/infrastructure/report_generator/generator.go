package report_generator

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

const (
	gridSize       = 12
	maxTableCols   = 6
	rowHeight      = 7
	sectionSpacing = 4
)

var headerBackground = &props.Color{Red: 220, Green: 230, Blue: 241}

// Generator renders a one page PDF summary of an analysis result.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateReport(outputPath string, result *domain.AnalysisResult, generatedAt time.Time) error {
	cfg := config.NewBuilder().
		WithLeftMargin(12).
		WithTopMargin(15).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(12, "Analysis Summary", props.Text{
		Style: fontstyle.Bold,
		Size:  16,
		Align: align.Center,
	}))
	m.AddRows(text.NewRow(6, "Generated "+generatedAt.Format(time.DateTime), props.Text{
		Size:  9,
		Align: align.Center,
	}))
	m.AddRows(line.NewRow(sectionSpacing))

	m.AddRows(sectionTitle("Metrics"))
	m.AddRows(metricRows(result)...)

	if len(result.FileSummaries) > 0 {
		m.AddRows(sectionTitle("Files"))
		m.AddRows(fileRows(result.FileSummaries)...)
	}

	m.AddRows(sectionTitle("Recommendation"))
	m.AddRows(text.NewRow(rowHeight, string(result.Recommendation.Type), props.Text{Style: fontstyle.Bold}))
	m.AddRows(text.NewRow(rowHeight*2, result.Recommendation.Text))

	if len(result.TableData.Headers) > 0 {
		m.AddRows(sectionTitle("Preview"))
		m.AddRows(previewRows(result.TableData)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf: %w", err)
	}

	return nil
}

func sectionTitle(title string) core.Row {
	return text.NewRow(10, title, props.Text{
		Top:   sectionSpacing,
		Style: fontstyle.Bold,
		Size:  12,
	})
}

func metricRows(result *domain.AnalysisResult) []core.Row {
	metrics := result.Metrics

	pairs := [][2]string{
		{"Status", string(result.Status)},
		{"Total rows", strconv.Itoa(metrics.TotalRows)},
		{"Numeric columns", strconv.Itoa(metrics.NumericColumns)},
		{"Estimated savings", metrics.Savings},
		{"ROI", metrics.ROI},
		{"Risk", string(metrics.Risk)},
		{"Breakeven", metrics.Breakeven},
	}

	for _, column := range slices.Sorted(maps.Keys(metrics.AvgValues)) {
		pairs = append(pairs, [2]string{
			"Average " + column,
			strconv.FormatFloat(metrics.AvgValues[column], 'f', 2, 64),
		})
	}

	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, keyValueRow(p[0], p[1]))
	}

	return rows
}

func keyValueRow(key, value string) core.Row {
	return textRow([]core.Col{
		text.NewCol(5, key, props.Text{Style: fontstyle.Bold}),
		text.NewCol(7, value),
	})
}

func fileRows(files []domain.FileSummary) []core.Row {
	rows := []core.Row{
		headerRow([]string{"File", "Rows", "Columns", "Numeric"}, []int{6, 2, 2, 2}),
	}

	for _, f := range files {
		rows = append(rows, dataRow([]string{
			f.File,
			strconv.Itoa(f.Rows),
			strconv.Itoa(f.Columns),
			strconv.Itoa(f.NumericColumns),
		}, []int{6, 2, 2, 2}))
	}

	return rows
}

func previewRows(data domain.TableData) []core.Row {
	headers := data.Headers
	if len(headers) > maxTableCols {
		headers = headers[:maxTableCols]
	}

	sizes := make([]int, len(headers))
	for i := range sizes {
		sizes[i] = gridSize / len(headers)
	}

	rows := []core.Row{headerRow(headers, sizes)}
	for _, r := range data.Rows {
		values := make([]string, len(headers))
		for i, h := range headers {
			values[i] = r[h]
		}
		rows = append(rows, dataRow(values, sizes))
	}

	return rows
}

func headerRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, len(values))
	for i, v := range values {
		cols[i] = text.NewCol(sizes[i], v, props.Text{Style: fontstyle.Bold, Size: 9, Left: 1, Top: 1})
	}

	return textRow(cols).WithStyle(&props.Cell{BackgroundColor: headerBackground})
}

func dataRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, len(values))
	for i, v := range values {
		cols[i] = text.NewCol(sizes[i], v, props.Text{Size: 9, Left: 1, Top: 1})
	}

	return textRow(cols)
}

func textRow(cols []core.Col) core.Row {
	return row.New(rowHeight).Add(cols...)
}
