package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	generationDuration *prom.HistogramVec
	generationsTotal   *prom.CounterVec
	generationErrors   *prom.CounterVec
	resourcesIncluded  *prom.GaugeVec
	sortRuns           *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the pipeline metrics on
// reg (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		generationDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "awesomegen",
			Name:      "generation_duration_seconds",
			Help:      "Duration of single-style document generation",
			Buckets:   prom.DefBuckets,
		}, []string{"style"}),
		generationsTotal: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "awesomegen",
			Name:      "generations_total",
			Help:      "Completed generator runs by style",
		}, []string{"style"}),
		generationErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "awesomegen",
			Name:      "generation_errors_total",
			Help:      "Failed generator runs by style",
		}, []string{"style"}),
		resourcesIncluded: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: "awesomegen",
			Name:      "resources_included",
			Help:      "Active resources included in the last run per style",
		}, []string{"style"}),
		sortRuns: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "awesomegen",
			Name:      "sort_runs_total",
			Help:      "Dataset sort invocations by outcome",
		}, []string{"success"}),
	}
	reg.MustRegister(
		pr.generationDuration,
		pr.generationsTotal,
		pr.generationErrors,
		pr.resourcesIncluded,
		pr.sortRuns,
	)
	return pr
}

func (pr *PrometheusRecorder) ObserveGeneration(style string, resources int, d time.Duration) {
	pr.generationDuration.WithLabelValues(style).Observe(d.Seconds())
	pr.generationsTotal.WithLabelValues(style).Inc()
	pr.resourcesIncluded.WithLabelValues(style).Set(float64(resources))
}

func (pr *PrometheusRecorder) IncGenerationError(style string) {
	pr.generationErrors.WithLabelValues(style).Inc()
}

func (pr *PrometheusRecorder) IncSortRun(success bool) {
	pr.sortRuns.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// HTTPHandler returns an http.Handler serving the registry in the
// Prometheus exposition format, used by watch mode's /metrics listener.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
