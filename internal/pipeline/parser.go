package pipeline

import (
	"context"
	"log/slog"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/kurochkinivan/sheet_analyzer/internal/tabular"
)

const (
	skipReasonUnsupported = "unsupported"
	skipReasonParseError  = "parse_error"
)

type Parser struct {
	log      *slog.Logger
	opts     tabular.Options
	recorder Recorder
}

func NewParser(log *slog.Logger, recorder Recorder) *Parser {
	return &Parser{
		log:      log,
		recorder: recorder,
	}
}

// Parse reads a single file. Unsupported formats come back as an error
// wrapping tabular.ErrUnsupportedFormat.
func (p *Parser) Parse(ctx context.Context, file *domain.File) *domain.ParseResult {
	p.log.DebugContext(ctx, "received file to parse",
		slog.String("filename", file.DisplayName()),
		slog.String("path", file.Path),
	)

	table, err := tabular.Read(file.Path, p.opts)
	if err != nil {
		return &domain.ParseResult{File: file, Error: err}
	}

	p.log.DebugContext(ctx, "successfully parsed file",
		slog.String("filename", file.DisplayName()),
		slog.Int("rows", table.Len()),
		slog.Int("columns", table.Width()),
	)

	return &domain.ParseResult{File: file, Table: table}
}

// ParseAll parses every supported file and returns only the successful
// results, in input order. Unsupported and broken files are logged and
// skipped.
func (p *Parser) ParseAll(ctx context.Context, files []*domain.File) []*domain.ParseResult {
	results := make([]*domain.ParseResult, 0, len(files))

	for _, file := range files {
		if !tabular.Supported(file.Extension()) {
			p.log.InfoContext(ctx, "skipping unsupported file", slog.String("filename", file.DisplayName()))
			p.skipped(skipReasonUnsupported)
			continue
		}

		result := p.Parse(ctx, file)
		if result.Error != nil {
			p.log.ErrorContext(ctx, "failed to parse file, skipping",
				slog.String("filename", file.DisplayName()),
				slog.String("err", result.Error.Error()),
			)
			p.skipped(skipReasonParseError)
			continue
		}

		results = append(results, result)
	}

	return results
}

func (p *Parser) skipped(reason string) {
	if p.recorder != nil {
		p.recorder.FileSkipped(reason)
	}
}
