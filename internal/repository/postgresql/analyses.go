package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

const TableAnalyses = "analyses"

type AnalysesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewAnalysesRepository(pool *pgxpool.Pool) *AnalysesRepository {
	return &AnalysesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AnalysesRepository) SaveAnalysis(ctx context.Context, analysis *domain.Analysis) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableAnalyses).
		Columns(
			"id",
			"mode",
			"status",
			"files_processed",
			"total_rows",
			"risk",
			"recommendation",
			"report_file",
			"error_message",
			"created_at",
		).
		Values(
			analysis.ID,
			analysis.Mode,
			analysis.Status,
			analysis.FilesProcessed,
			analysis.TotalRows,
			analysis.Risk,
			analysis.Recommendation,
			analysis.ReportFile,
			analysis.ErrorMessage,
			analysis.CreatedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// Analyses returns one page of journal entries, newest first, together with
// the total number of entries.
func (r *AnalysesRepository) Analyses(ctx context.Context, limit, offset uint64) ([]*domain.Analysis, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableAnalyses).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(
			"id",
			"mode",
			"status",
			"files_processed",
			"total_rows",
			"risk",
			"recommendation",
			"report_file",
			"error_message",
			"created_at",
		).
		From(TableAnalyses).
		OrderBy("created_at DESC", "id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	analyses, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Analysis])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return analyses, total, nil
}
