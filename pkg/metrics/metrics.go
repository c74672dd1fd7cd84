package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrainingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agroadvisor_training_duration_seconds",
			Help:    "Time spent fitting a model on a dataset",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	TrainingTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agroadvisor_training_total",
			Help: "Model trainings by outcome",
		},
		[]string{"model", "outcome"},
	)

	ModelR2 = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "agroadvisor_model_r2",
			Help: "Hold-out R2 of the currently cached model",
		},
		[]string{"model"},
	)

	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agroadvisor_predictions_total",
			Help: "Predictions served by path",
		},
		[]string{"path"},
	)

	SectionsFired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agroadvisor_recommendation_sections_total",
			Help: "Recommendation sections included in a bundle",
		},
		[]string{"crop", "section"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agroadvisor_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	RiskAlerts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agroadvisor_market_risk_alerts_total",
			Help: "Market risk alerts raised by category",
		},
		[]string{"category"},
	)
)

// RecordTraining updates the training series for one fit attempt.
func RecordTraining(model string, elapsed time.Duration, r2 float64, err error) {
	if err != nil {
		TrainingTotal.WithLabelValues(model, "error").Inc()
		return
	}
	TrainingDuration.WithLabelValues(model).Observe(elapsed.Seconds())
	TrainingTotal.WithLabelValues(model, "success").Inc()
	ModelR2.WithLabelValues(model).Set(r2)
}
