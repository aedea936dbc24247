package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/sheet_analyzer/internal/config"
	v1 "github.com/kurochkinivan/sheet_analyzer/internal/controller/http/v1"
	"github.com/kurochkinivan/sheet_analyzer/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/sheet_analyzer/internal/metrics"
	"github.com/kurochkinivan/sheet_analyzer/internal/pipeline"
	"github.com/kurochkinivan/sheet_analyzer/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("upload_dir", a.cfg.App.UploadDirectory),
		slog.String("output_dir", a.cfg.App.OutputDirectory),
		slog.Int64("max_upload_size", a.cfg.App.MaxUploadSize),
		slog.Duration("processing_delay", a.cfg.App.ProcessingDelay),
		slog.Bool("pdf_summary", a.cfg.App.PDFSummary),
	)

	for _, dir := range []string{a.cfg.App.UploadDirectory, a.cfg.App.OutputDirectory} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	var (
		journal       pipeline.Journal
		analysesRepo  v1.AnalysesRepository
		summariesRepo v1.FileSummariesRepository
	)

	if a.cfg.PostgreSQL.Enabled() {
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return fmt.Errorf("failed to create db connection: %w", err)
		}
		defer pool.Close()

		analyses := postgresql.NewAnalysesRepository(pool)
		files := postgresql.NewAnalysisFilesRepository(pool)

		journal = pipeline.NewWriter(a.log, analyses, files, postgresql.NewTxManager(pool))
		analysesRepo = analyses
		summariesRepo = files
	} else {
		a.log.InfoContext(ctx, "postgresql is not configured, analysis journal disabled")
	}

	var reportGenerator pipeline.ReportGenerator
	if a.cfg.App.PDFSummary {
		reportGenerator = report_generator.New()
	}

	m := metrics.New()

	analyzer := pipeline.NewAnalyzer(a.log, pipeline.AnalyzerConfig{
		OutputDir: a.cfg.App.OutputDirectory,
		Delay:     a.cfg.App.ProcessingDelay,
	}, reportGenerator, journal, m)

	router := v1.NewRouter(
		v1.NewAnalyzeHandler(a.log, v1.AnalyzeConfig{
			UploadDir:     a.cfg.App.UploadDirectory,
			OutputDir:     a.cfg.App.OutputDirectory,
			MaxUploadSize: a.cfg.App.MaxUploadSize,
		}, analyzer),
		v1.NewAnalysesHandler(analysesRepo, summariesRepo),
		m.Handler(),
	)

	return a.serve(ctx, v1.NewServer(a.cfg.HTTP, router))
}

func (a *App) serve(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "server stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "server stopped gracefully")

	return nil
}
