package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

const TableAnalysisFiles = "analysis_files"

type AnalysisFilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewAnalysisFilesRepository(pool *pgxpool.Pool) *AnalysisFilesRepository {
	return &AnalysisFilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AnalysisFilesRepository) SaveFileSummaries(ctx context.Context, analysisID uuid.UUID, files ...domain.FileSummary) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableAnalysisFiles}, []string{
		"analysis_id",
		"position",
		"name",
		"rows",
		"columns",
		"numeric_columns",
	}, pgx.CopyFromSlice(len(files), func(i int) ([]any, error) {
		return []any{
			analysisID,
			i,
			files[i].File,
			files[i].Rows,
			files[i].Columns,
			files[i].NumericColumns,
		}, nil
	}))
	if err != nil {
		return copyRowsError(err)
	}

	if copied != int64(len(files)) {
		return fmt.Errorf("%w: copied %d file summaries, expected %d", ErrIncompleteCopy, copied, len(files))
	}

	return nil
}

type fileSummaryRow struct {
	AnalysisID uuid.UUID `db:"analysis_id"`
	domain.FileSummary
}

// FileSummaries returns the per-file summaries of the given analyses keyed by
// analysis id, each in upload order.
func (r *AnalysisFilesRepository) FileSummaries(ctx context.Context, analysisIDs ...uuid.UUID) (map[uuid.UUID][]domain.FileSummary, error) {
	if len(analysisIDs) == 0 {
		return map[uuid.UUID][]domain.FileSummary{}, nil
	}

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"analysis_id",
			"name",
			"rows",
			"columns",
			"numeric_columns",
		).
		From(TableAnalysisFiles).
		Where(sq.Eq{"analysis_id": analysisIDs}).
		OrderBy("analysis_id", "position").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	summaries, err := pgx.CollectRows(rows, pgx.RowToStructByName[fileSummaryRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	byAnalysis := make(map[uuid.UUID][]domain.FileSummary, len(analysisIDs))
	for _, s := range summaries {
		byAnalysis[s.AnalysisID] = append(byAnalysis[s.AnalysisID], s.FileSummary)
	}

	return byAnalysis, nil
}
