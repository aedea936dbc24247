package metrics

import (
	"net/http"
	"time"

	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sheet_analyzer"

type Metrics struct {
	registry *prometheus.Registry

	analyses      *prometheus.CounterVec
	rowsProcessed *prometheus.CounterVec
	filesSkipped  *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Analyses performed, by mode and outcome.",
		}, []string{"mode", "status"}),
		rowsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_processed_total",
			Help:      "Table rows analysed, by mode.",
		}, []string{"mode"}),
		filesSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_skipped_total",
			Help:      "Uploaded files left out of an analysis, by reason.",
		}, []string{"reason"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent producing an analysis.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"mode"}),
	}
}

func (m *Metrics) ObserveAnalysis(mode domain.Mode, status domain.Status, rows int, elapsed time.Duration) {
	m.analyses.WithLabelValues(string(mode), string(status)).Inc()
	m.duration.WithLabelValues(string(mode)).Observe(elapsed.Seconds())

	if rows > 0 {
		m.rowsProcessed.WithLabelValues(string(mode)).Add(float64(rows))
	}
}

func (m *Metrics) FileSkipped(reason string) {
	m.filesSkipped.WithLabelValues(reason).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
