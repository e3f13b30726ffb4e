package adapters

import (
	"context"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/ports"
	"github.com/tim-tx/cello-utils/internal/types"
)

// TextfileMetricsAdapter collects one run's metrics in a private registry
// and writes them in the node exporter textfile format on Flush.
type TextfileMetricsAdapter struct {
	Path        string
	registry    *prometheus.Registry
	stageRows   *prometheus.CounterVec
	warnings    *prometheus.CounterVec
	collections *prometheus.GaugeVec
	durations   *prometheus.HistogramVec
}

func NewTextfileMetricsAdapter(path string) *TextfileMetricsAdapter {
	a := &TextfileMetricsAdapter{
		Path:     path,
		registry: prometheus.NewRegistry(),
		stageRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ucf_stage_rows_total",
			Help: "Rows or lines read per assembly stage.",
		}, []string{"stage"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ucf_warnings_total",
			Help: "Recoverable warnings raised during assembly.",
		}, []string{"code"}),
		collections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ucf_collections",
			Help: "Collections in the assembled document.",
		}, []string{"kind"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ucf_stage_duration_seconds",
			Help:    "Time spent per assembly stage.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"stage"}),
	}
	a.registry.MustRegister(a.stageRows, a.warnings, a.collections, a.durations)
	return a
}

var _ ports.MetricsPort = (*TextfileMetricsAdapter)(nil)

func (a *TextfileMetricsAdapter) ObserveStage(stage string, rows int, elapsed time.Duration) {
	a.stageRows.WithLabelValues(stage).Add(float64(rows))
	a.durations.WithLabelValues(stage).Observe(elapsed.Seconds())
}

func (a *TextfileMetricsAdapter) CountWarning(code types.WarningCode) {
	a.warnings.WithLabelValues(string(code)).Inc()
}

func (a *TextfileMetricsAdapter) SetCollections(kind types.Kind, count int) {
	a.collections.WithLabelValues(string(kind)).Set(float64(count))
}

func (a *TextfileMetricsAdapter) Gatherer() prometheus.Gatherer {
	return a.registry
}

func (a *TextfileMetricsAdapter) Flush(ctx context.Context) error {
	if err := prometheus.WriteToTextfile(a.Path, a.registry); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write metrics textfile").
			WithCause(err)
	}
	log.Ctx(ctx).Debug().Str("path", a.Path).Msg("metrics written")
	return nil
}

// NoopMetricsAdapter discards everything.
type NoopMetricsAdapter struct{}

var _ ports.MetricsPort = NoopMetricsAdapter{}

func (NoopMetricsAdapter) ObserveStage(string, int, time.Duration) {}
func (NoopMetricsAdapter) CountWarning(types.WarningCode)          {}
func (NoopMetricsAdapter) SetCollections(types.Kind, int)          {}
func (NoopMetricsAdapter) Flush(context.Context) error             { return nil }

// NewMetricsAdapter returns a textfile recorder for path, or a no-op one
// when path is empty.
func NewMetricsAdapter(path string) ports.MetricsPort {
	if path == "" {
		return NoopMetricsAdapter{}
	}
	return NewTextfileMetricsAdapter(path)
}
