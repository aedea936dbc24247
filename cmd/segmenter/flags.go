package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kurochkinivan/sheet_analyzer/internal/segmenter"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "segmenter",
		Usage:   "Split a loan data dump into prepayment charge segments",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cutoff, err := time.Parse(time.DateOnly, cmd.String("cutoff"))
			if err != nil {
				return fmt.Errorf("failed to parse cutoff: %w", err)
			}

			_, err = segmenter.New(log, segmenter.Config{
				InputPath: cmd.String("input"),
				HeaderRow: cmd.Int("header-row"),
				OutputDir: cmd.String("output-dir"),
				Cutoff:    cutoff,
			}).Run(ctx)

			return err
		},
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "input",
			Aliases:   []string{"i"},
			Usage:     "Read loan data from `FILE`",
			Value:     "DATA_DUMP_FORMAT_Mar_2025 - Shared - V7.xlsx",
			Sources:   cli.EnvVars("SEGMENTER_INPUT"),
			Validator: validateFile,
		},
		&cli.IntFlag{
			Name:    "header-row",
			Usage:   "Set zero-based row holding column names",
			Value:   5,
			Sources: cli.EnvVars("SEGMENTER_HEADER_ROW"),
			Validator: func(row int) error {
				if row < 0 {
					return fmt.Errorf("header row must not be negative, got %d", row)
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Set directory to write segment workbooks to",
			Value:   ".",
			Sources: cli.EnvVars("SEGMENTER_OUTPUT_DIR"),
		},
		&cli.StringFlag{
			Name:    "cutoff",
			Usage:   "Set dual rate cutoff date (YYYY-MM-DD)",
			Value:   "2024-03-31",
			Sources: cli.EnvVars("SEGMENTER_CUTOFF"),
			Validator: func(s string) error {
				_, err := time.Parse(time.DateOnly, s)
				return err
			},
		},
	}
}

func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	return nil
}
