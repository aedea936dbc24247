package postgresql_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/kurochkinivan/sheet_analyzer/internal/config"
	"github.com/kurochkinivan/sheet_analyzer/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	errUnavailable := errors.New("connection refused")

	t.Run("succeeds after failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		ping := func(context.Context) error {
			calls++
			if calls < 3 {
				return errUnavailable
			}
			return nil
		}

		err := postgresql.Retry(log, ping, 5, time.Millisecond)(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after retries", func(t *testing.T) {
		t.Parallel()

		calls := 0
		ping := func(context.Context) error {
			calls++
			return errUnavailable
		}

		err := postgresql.Retry(log, ping, 2, time.Millisecond)(context.Background())
		require.ErrorIs(t, err, errUnavailable)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		ping := func(context.Context) error {
			cancel()
			return errUnavailable
		}

		err := postgresql.Retry(log, ping, 5, time.Hour)(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnectionString(t *testing.T) {
	t.Parallel()

	got := postgresql.ConnectionString(config.PostgreSQL{
		Host:     "db",
		Port:     "5433",
		Username: "app",
		Password: "p@ss",
		DBName:   "sheet_analyzer",
	})

	assert.Equal(t, "postgres://app:p%40ss@db:5433/sheet_analyzer?application_name=sheet_analyzer&sslmode=disable", got)
}
