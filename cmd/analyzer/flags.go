package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/sheet_analyzer/internal/app"
	"github.com/kurochkinivan/sheet_analyzer/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "sheet_analyzer",
		Usage:   "Spreadsheet analysis service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "upload-dir",
			Aliases: []string{"u"},
			Usage:   "Set directory to store uploaded files in",
			Value:   "uploads",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SHEET_ANALYZER_UPLOAD_DIR"),
				yaml.YAML("app.upload_dir", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Set directory to write reports to",
			Value:   "outputs",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SHEET_ANALYZER_OUTPUT_DIR"),
				yaml.YAML("app.output_dir", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.Int64Flag{
			Name:    "max-upload-size",
			Usage:   "Set maximum request size in bytes",
			Value:   50 << 20,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.max_upload_size", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "processing-delay",
			Usage:   "Set artificial delay before every analysis",
			Value:   0,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.processing_delay", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.BoolFlag{
			Name:    "pdf-summary",
			Usage:   "Render a PDF summary next to every workbook report",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.pdf_summary", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:  "pg-username",
			Usage: "Set PostgreSQL username, the analysis journal is disabled without it",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SHEET_ANALYZER_PG_USERNAME"),
				yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:  "pg-password",
			Usage: "Set PostgreSQL password",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SHEET_ANALYZER_PG_PASSWORD"),
				yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config)),
			),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "5000",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   2 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
