package segmenter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/kurochkinivan/sheet_analyzer/internal/tabular"
)

const (
	ChargedFile         = "Persons_charged_with_ppc.xlsx"
	FixedFile           = "fixed_ROI_ppc_charged.xlsx"
	FloatingFile        = "floating_ROI_ppc_charged.xlsx"
	FixedHousingOwnFile = "fixed_HL_own_source_ppc.xlsx"
	InvalidFile         = "all_invalid_pre_payment_charges.xlsx"
)

const (
	exportSheet       = "Sheet1"
	exportPlaceholder = "NA"
)

var ErrMissingColumns = errors.New("input is missing required columns")

type Config struct {
	InputPath string
	// HeaderRow is the zero-based row holding column names.
	HeaderRow int
	OutputDir string
	// Dual-rate loans closed on or before Cutoff use the rate type recorded
	// at the earlier reporting date.
	Cutoff time.Time
}

// Segments are the derived subsets of the loan table, in export order.
type Segments struct {
	Charged         *domain.Table
	Fixed           *domain.Table
	Floating        *domain.Table
	FixedHousingOwn *domain.Table
	Invalid         *domain.Table
}

type Segmenter struct {
	log *slog.Logger
	cfg Config
}

func New(log *slog.Logger, cfg Config) *Segmenter {
	return &Segmenter{
		log: log,
		cfg: cfg,
	}
}

// Run reads the input workbook, segments it and writes every segment to
// its own workbook in the output directory.
func (s *Segmenter) Run(ctx context.Context) (*Segments, error) {
	log := s.log.With(slog.String("input", s.cfg.InputPath))

	log.InfoContext(ctx, "reading loan data")

	table, err := tabular.Read(s.cfg.InputPath, tabular.Options{HeaderRow: s.cfg.HeaderRow})
	if err != nil {
		return nil, fmt.Errorf("failed to read loan data: %w", err)
	}

	segments, err := Segment(table, s.cfg.Cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to segment loan data: %w", err)
	}

	log.InfoContext(ctx, "segmented loan data",
		slog.Int("rows", table.Len()),
		slog.Int("charged", segments.Charged.Len()),
		slog.Int("fixed", segments.Fixed.Len()),
		slog.Int("floating", segments.Floating.Len()),
		slog.Int("fixed_housing_own", segments.FixedHousingOwn.Len()),
		slog.Int("invalid", segments.Invalid.Len()),
	)

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	exports := []struct {
		name  string
		table *domain.Table
	}{
		{ChargedFile, segments.Charged},
		{FixedFile, segments.Fixed},
		{FloatingFile, segments.Floating},
		{FixedHousingOwnFile, segments.FixedHousingOwn},
		{InvalidFile, segments.Invalid},
	}

	for _, export := range exports {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(s.cfg.OutputDir, export.name)

		err := tabular.WriteWorkbook(path,
			[]tabular.Sheet{{Name: exportSheet, Table: export.table}},
			tabular.WriteOptions{Placeholder: exportPlaceholder},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", export.name, err)
		}

		log.DebugContext(ctx, "exported segment", slog.String("path", path), slog.Int("rows", export.table.Len()))
	}

	log.InfoContext(ctx, "segmentation finished", slog.String("output_dir", s.cfg.OutputDir))

	return segments, nil
}

// Segment splits the loan table. Charged loans of individual borrowers are
// split by rate type, dual-rate loans joining the bucket of the rate in
// force on their closure date. Invalid charges are fixed-rate housing loans
// prepaid from own sources followed by every floating-rate loan.
func Segment(table *domain.Table, cutoff time.Time) (*Segments, error) {
	records, err := decodeRecords(table)
	if err != nil {
		return nil, err
	}

	var charged, fixed, floating, dualFixed, dualFloating []int
	for i, r := range records {
		if !r.charged() {
			continue
		}
		charged = append(charged, i)

		if !r.individual() {
			continue
		}

		switch r.SanctionedROI {
		case rateFixed:
			fixed = append(fixed, i)
		case rateFloating:
			floating = append(floating, i)
		case rateDual:
			switch r.effectiveRate(cutoff) {
			case rateFixed:
				dualFixed = append(dualFixed, i)
			case rateFloating:
				dualFloating = append(dualFloating, i)
			}
		}
	}

	fixed = append(fixed, dualFixed...)
	floating = append(floating, dualFloating...)

	var fixedHousingOwn []int
	for _, i := range fixed {
		if records[i].housing() && records[i].ownSource() {
			fixedHousingOwn = append(fixedHousingOwn, i)
		}
	}

	invalid := make([]int, 0, len(fixedHousingOwn)+len(floating))
	invalid = append(invalid, fixedHousingOwn...)
	invalid = append(invalid, floating...)

	return &Segments{
		Charged:         rowsAt(table, charged),
		Fixed:           rowsAt(table, fixed),
		Floating:        rowsAt(table, floating),
		FixedHousingOwn: rowsAt(table, fixedHousingOwn),
		Invalid:         rowsAt(table, invalid),
	}, nil
}

func decodeRecords(table *domain.Table) ([]*loanRecord, error) {
	required, err := csvutil.Header(loanRecord{}, "csv")
	if err != nil {
		return nil, fmt.Errorf("failed to build loan header: %w", err)
	}

	var missing []string
	for _, column := range required {
		if table.ColumnIndex(column) < 0 {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumns, missing)
	}

	dec, err := csvutil.NewDecoder(tabular.NewRecordReader(table), table.Headers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	dec.DisallowMissingColumns = true

	records := make([]*loanRecord, 0, table.Len())
	for {
		var record loanRecord

		err := dec.Decode(&record)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode loan record #%d: %w", len(records)+1, err)
		}

		records = append(records, &record)
	}

	return records, nil
}

func rowsAt(table *domain.Table, idx []int) *domain.Table {
	out := &domain.Table{Headers: table.Headers}
	for _, i := range idx {
		out.Rows = append(out.Rows, table.Rows[i])
	}
	return out
}
