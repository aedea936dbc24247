package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	HTTP
}

type App struct {
	UploadDirectory string        `validate:"required"`
	OutputDirectory string        `validate:"required"`
	MaxUploadSize   int64         `validate:"gt=0"`
	ProcessingDelay time.Duration `validate:"gte=0"`
	PDFSummary      bool
}

// PostgreSQL is optional. The analysis journal is only kept when a
// username and database name are both configured.
type PostgreSQL struct {
	Host     string `validate:"required_with=Username"`
	Port     string `validate:"omitempty,numeric"`
	Username string `validate:"required_with=DBName"`
	Password string
	DBName   string `validate:"required_with=Username"`
}

func (p PostgreSQL) Enabled() bool {
	return p.Username != "" && p.DBName != ""
}

type HTTP struct {
	Host         string
	Port         string        `validate:"required,numeric"`
	IdleTimeout  time.Duration `validate:"gt=0"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
}

func Load(cmd *cli.Command) (*Config, error) {
	cfg := &Config{
		App: App{
			UploadDirectory: cmd.String("upload-dir"),
			OutputDirectory: cmd.String("output-dir"),
			MaxUploadSize:   cmd.Int64("max-upload-size"),
			ProcessingDelay: cmd.Duration("processing-delay"),
			PDFSummary:      cmd.Bool("pdf-summary"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
