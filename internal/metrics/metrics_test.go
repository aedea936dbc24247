package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/kurochkinivan/sheet_analyzer/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.ObserveAnalysis(domain.ModeSingle, domain.StatusSuccess, 42, 120*time.Millisecond)
	m.ObserveAnalysis(domain.ModeBatch, domain.StatusError, 0, time.Second)
	m.FileSkipped("unsupported")
	m.FileSkipped("unsupported")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `sheet_analyzer_analyses_total{mode="single",status="success"} 1`)
	assert.Contains(t, string(body), `sheet_analyzer_analyses_total{mode="batch",status="error"} 1`)
	assert.Contains(t, string(body), `sheet_analyzer_rows_processed_total{mode="single"} 42`)
	assert.NotContains(t, string(body), `sheet_analyzer_rows_processed_total{mode="batch"}`)
	assert.Contains(t, string(body), `sheet_analyzer_files_skipped_total{reason="unsupported"} 2`)
	assert.Contains(t, string(body), `sheet_analyzer_analysis_duration_seconds_count{mode="batch"} 1`)
}

func TestMetrics_FilesSkipped(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.FileSkipped("parse_error")
	m.FileSkipped("unsupported")

	srv := httptest.NewServer(m.Handler())
	t.Cleanup(srv.Close)

	expected := `
# HELP sheet_analyzer_files_skipped_total Uploaded files left out of an analysis, by reason.
# TYPE sheet_analyzer_files_skipped_total counter
sheet_analyzer_files_skipped_total{reason="parse_error"} 1
sheet_analyzer_files_skipped_total{reason="unsupported"} 1
`

	err := testutil.ScrapeAndCompare(srv.URL, strings.NewReader(expected), "sheet_analyzer_files_skipped_total")
	require.NoError(t, err)
}
