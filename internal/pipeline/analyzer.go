package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/kurochkinivan/sheet_analyzer/internal/tabular"
)

var ErrNoValidData = errors.New("no valid data files could be processed")

const (
	singleContextRunes = 30
	batchContextRunes  = 50
)

type AnalyzerConfig struct {
	OutputDir string
	// Delay is slept before every analysis. It only simulates latency.
	Delay time.Duration
}

type Analyzer struct {
	log             *slog.Logger
	cfg             AnalyzerConfig
	parser          *Parser
	reportGenerator ReportGenerator
	journal         Journal
	recorder        Recorder
	now             func() time.Time
}

// NewAnalyzer wires the analyzer. reportGenerator, journal and recorder are
// optional and may be nil.
func NewAnalyzer(
	log *slog.Logger,
	cfg AnalyzerConfig,
	reportGenerator ReportGenerator,
	journal Journal,
	recorder Recorder,
) *Analyzer {
	return &Analyzer{
		log:             log,
		cfg:             cfg,
		parser:          NewParser(log, recorder),
		reportGenerator: reportGenerator,
		journal:         journal,
		recorder:        recorder,
		now:             time.Now,
	}
}

type outcome struct {
	result *domain.AnalysisResult
	files  []domain.FileSummary
	report string
}

// AnalyzeSingle analyzes one file. Files in a format that cannot be parsed
// are replaced by placeholder data.
func (a *Analyzer) AnalyzeSingle(ctx context.Context, file *domain.File, userContext string) (*domain.AnalysisResult, error) {
	start := a.now()

	out, err := a.analyzeSingle(ctx, file, userContext)
	a.finish(ctx, domain.ModeSingle, start, out, err)
	if err != nil {
		return nil, err
	}

	return out.result, nil
}

// AnalyzeBatch analyzes several files and combines those sharing the
// columns of the first parsed file. It fails with ErrNoValidData when no
// file could be parsed.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, files []*domain.File, userContext string) (*domain.AnalysisResult, error) {
	start := a.now()

	out, err := a.analyzeBatch(ctx, files, userContext)
	a.finish(ctx, domain.ModeBatch, start, out, err)
	if err != nil {
		return nil, err
	}

	return out.result, nil
}

func (a *Analyzer) analyzeSingle(ctx context.Context, file *domain.File, userContext string) (*outcome, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	table, err := a.singleTable(ctx, file)
	if err != nil {
		return nil, err
	}

	summary := Summarize(table)
	agg := Aggregate(table)
	metrics := metricsOf(summary, agg, table.Len())

	generatedAt := a.now()
	report := reportFilename(generatedAt)

	if err := a.writeReport(report, singleReportSheets(table, summary)); err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		Status:  domain.StatusSuccess,
		Metrics: metrics,
		Recommendation: domain.Recommendation{
			Type: RecommendationFor(metrics.Risk),
			Text: singleRecommendationText(metrics.Risk, table.Len(), userContext),
		},
		TableData:   Preview(table, singlePreviewRows),
		DownloadURL: downloadURL(report),
	}
	result.SummaryURL = a.renderSummary(ctx, generatedAt, result)

	return &outcome{
		result: result,
		files:  []domain.FileSummary{FileSummaryOf(file.DisplayName(), table)},
		report: report,
	}, nil
}

func (a *Analyzer) singleTable(ctx context.Context, file *domain.File) (*domain.Table, error) {
	if !tabular.Supported(file.Extension()) {
		a.log.InfoContext(ctx, "unsupported file format, using placeholder data",
			slog.String("filename", file.DisplayName()),
		)
		return placeholderTable(), nil
	}

	result := a.parser.Parse(ctx, file)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", file.DisplayName(), result.Error)
	}

	return result.Table, nil
}

func (a *Analyzer) analyzeBatch(ctx context.Context, files []*domain.File, userContext string) (*outcome, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	parsed := a.parser.ParseAll(ctx, files)
	if len(parsed) == 0 {
		return nil, ErrNoValidData
	}

	summaries := make([]domain.FileSummary, 0, len(parsed))
	totalRows := 0
	for _, r := range parsed {
		summaries = append(summaries, FileSummaryOf(r.File.DisplayName(), r.Table))
		totalRows += r.Table.Len()
	}

	combined := Combine(parsed)
	summary := Summarize(combined)
	agg := Aggregate(combined)
	metrics := metricsOf(summary, agg, totalRows)

	generatedAt := a.now()
	report := reportFilename(generatedAt)

	if err := a.writeReport(report, batchReportSheets(parsed, summaries, combined, agg, totalRows)); err != nil {
		return nil, err
	}

	tableData := Preview(combined, batchPreviewRows)
	tableData.TotalRows = &totalRows

	result := &domain.AnalysisResult{
		Status:         domain.StatusSuccess,
		FilesProcessed: len(parsed),
		Metrics:        metrics,
		Recommendation: domain.Recommendation{
			Type: RecommendationFor(metrics.Risk),
			Text: batchRecommendationText(len(files), totalRows, userContext),
		},
		TableData:     tableData,
		FileSummaries: summaries,
		DownloadURL:   downloadURL(report),
	}
	result.SummaryURL = a.renderSummary(ctx, generatedAt, result)

	return &outcome{result: result, files: summaries, report: report}, nil
}

func (a *Analyzer) writeReport(filename string, sheets []tabular.Sheet) error {
	path := filepath.Join(a.cfg.OutputDir, filename)

	if err := tabular.WriteWorkbook(path, sheets, tabular.WriteOptions{}); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// renderSummary writes the optional PDF summary and returns its download
// URL, or an empty string when it is disabled or fails.
func (a *Analyzer) renderSummary(ctx context.Context, generatedAt time.Time, result *domain.AnalysisResult) string {
	if a.reportGenerator == nil {
		return ""
	}

	filename := summaryFilename(generatedAt)
	path := filepath.Join(a.cfg.OutputDir, filename)

	if err := a.reportGenerator.GenerateReport(path, result, generatedAt); err != nil {
		a.log.ErrorContext(ctx, "failed to generate pdf summary",
			slog.String("path", path),
			slog.String("err", err.Error()),
		)
		_ = os.Remove(path)
		return ""
	}

	return downloadURL(filename)
}

func (a *Analyzer) wait(ctx context.Context) error {
	if a.cfg.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(a.cfg.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish records the outcome in the journal and metrics. Neither may fail
// the request.
func (a *Analyzer) finish(ctx context.Context, mode domain.Mode, start time.Time, out *outcome, err error) {
	analysis := &domain.Analysis{
		ID:        uuid.New(),
		Mode:      mode,
		Status:    domain.StatusSuccess,
		CreatedAt: start,
	}

	switch err {
	case nil:
		analysis.FilesProcessed = len(out.files)
		analysis.TotalRows = out.result.Metrics.TotalRows
		analysis.Risk = out.result.Metrics.Risk
		analysis.Recommendation = out.result.Recommendation.Type
		analysis.ReportFile = out.report
		analysis.Files = out.files

	default:
		analysis.Status = domain.StatusError
		analysis.ErrorMessage = err.Error()
	}

	log := a.log.With(
		slog.String("analysis_id", analysis.ID.String()),
		slog.String("mode", string(mode)),
		slog.String("status", string(analysis.Status)),
	)

	if err != nil {
		log.ErrorContext(ctx, "analysis failed", slog.String("err", err.Error()))
	} else {
		log.InfoContext(ctx, "analysis completed",
			slog.Int("files_processed", analysis.FilesProcessed),
			slog.Int("total_rows", analysis.TotalRows),
			slog.String("report", analysis.ReportFile),
		)
	}

	if a.recorder != nil {
		a.recorder.ObserveAnalysis(mode, analysis.Status, analysis.TotalRows, a.now().Sub(start))
	}

	if a.journal != nil {
		if err := a.journal.Record(ctx, analysis); err != nil {
			log.ErrorContext(ctx, "failed to record analysis", slog.String("err", err.Error()))
		}
	}
}

func placeholderTable() *domain.Table {
	return domain.NewTable([]string{"Data", "Value"}, [][]domain.Value{
		{domain.Text("Item 1"), domain.Number(100)},
		{domain.Text("Item 2"), domain.Number(200)},
	})
}

func singleRecommendationText(risk domain.Risk, rows int, userContext string) string {
	advice := "we recommend proceeding."
	if RecommendationFor(risk) == domain.RecommendationReview {
		advice = "we recommend a detailed review before proceeding."
	}

	return fmt.Sprintf("Based on the analysis of %d records, %s (Context: %s...)",
		rows, advice, truncateRunes(userContext, singleContextRunes))
}

func batchRecommendationText(files, rows int, userContext string) string {
	text := fmt.Sprintf("Analyzed %d file(s) with %d total records.", files, rows)
	if userContext == "" {
		return text
	}
	return fmt.Sprintf("%s %s...", text, truncateRunes(userContext, batchContextRunes))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
