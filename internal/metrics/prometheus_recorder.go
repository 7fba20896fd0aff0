package metrics

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg          *prom.Registry
	rounds       *prom.CounterVec
	attempts     *prom.HistogramVec
	invalidInput *prom.CounterVec
	highScore    prom.Gauge
}

// NewPrometheusRecorder constructs and registers the numguess metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		rounds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "numguess",
			Name:      "rounds_total",
			Help:      "Completed rounds by difficulty and outcome",
		}, []string{"difficulty", "outcome"}),
		attempts: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "numguess",
			Name:      "round_attempts",
			Help:      "Attempts used per completed round",
			Buckets:   prom.LinearBuckets(1, 1, 10),
		}, []string{"difficulty"}),
		invalidInput: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "numguess",
			Name:      "invalid_input_total",
			Help:      "Rejected inputs by kind",
		}, []string{"kind"}),
		highScore: prom.NewGauge(prom.GaugeOpts{
			Namespace: "numguess",
			Name:      "high_score",
			Help:      "Current high score",
		}),
	}
	reg.MustRegister(pr.rounds, pr.attempts, pr.invalidInput, pr.highScore)
	return pr
}

func (p *PrometheusRecorder) IncRound(difficulty, outcome string) {
	p.rounds.WithLabelValues(difficulty, outcome).Inc()
}

func (p *PrometheusRecorder) ObserveAttempts(difficulty string, attempts int) {
	p.attempts.WithLabelValues(difficulty).Observe(float64(attempts))
}

func (p *PrometheusRecorder) IncInvalidInput(kind string) {
	p.invalidInput.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) SetHighScore(score int) {
	p.highScore.Set(float64(score))
}

// Registry exposes the underlying registry (useful for tests).
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile writes all gathered metrics to path in text exposition format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
