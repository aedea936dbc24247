package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

// Writer stores analyses and their per-file summaries in one transaction.
type Writer struct {
	log                *slog.Logger
	analysisSaver      AnalysisSaver
	fileSummariesSaver FileSummariesSaver
	transactor         Transactor
}

func NewWriter(
	log *slog.Logger,
	analysisSaver AnalysisSaver,
	fileSummariesSaver FileSummariesSaver,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:                log,
		analysisSaver:      analysisSaver,
		fileSummariesSaver: fileSummariesSaver,
		transactor:         transactor,
	}
}

func (w *Writer) Record(ctx context.Context, analysis *domain.Analysis) error {
	log := w.log.With(
		slog.String("analysis_id", analysis.ID.String()),
		slog.Int("files_count", len(analysis.Files)),
	)

	log.DebugContext(ctx, "saving analysis to journal")

	err := w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := w.analysisSaver.SaveAnalysis(ctx, analysis); err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}

		if len(analysis.Files) == 0 {
			return nil
		}

		if err := w.fileSummariesSaver.SaveFileSummaries(ctx, analysis.ID, analysis.Files...); err != nil {
			return fmt.Errorf("failed to save file summaries: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "analysis saved successfully")

	return nil
}
