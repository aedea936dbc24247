package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

type AnalysisSaver interface {
	SaveAnalysis(ctx context.Context, analysis *domain.Analysis) error
}

type FileSummariesSaver interface {
	SaveFileSummaries(ctx context.Context, analysisID uuid.UUID, files ...domain.FileSummary) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportGenerator interface {
	GenerateReport(outputPath string, result *domain.AnalysisResult, generatedAt time.Time) error
}

type Journal interface {
	Record(ctx context.Context, analysis *domain.Analysis) error
}

type Recorder interface {
	ObserveAnalysis(mode domain.Mode, status domain.Status, rows int, elapsed time.Duration)
	FileSkipped(reason string)
}
