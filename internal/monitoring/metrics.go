package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Search metrics
	generationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "composer_generations_total",
			Help: "Total number of generations evolved",
		},
	)

	bestScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "composer_best_score",
			Help: "Best fitness score of the latest generation",
		},
	)

	averageScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "composer_average_score",
			Help: "Average fitness score of the latest generation",
		},
	)

	generationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "composer_generation_duration_seconds",
			Help:    "Time spent scoring and ranking one generation",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(generationsTotal)
	prometheus.MustRegister(bestScore)
	prometheus.MustRegister(averageScore)
	prometheus.MustRegister(generationDuration)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordGeneration records one completed generation.
func RecordGeneration(best, avg float64, elapsed time.Duration) {
	generationsTotal.Inc()
	bestScore.Set(best)
	averageScore.Set(avg)
	generationDuration.Observe(elapsed.Seconds())
}
