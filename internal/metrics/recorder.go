// Package metrics exposes optional counters for guessing game activity.
//
// Components receive a Recorder; NoopRecorder is the default so callers never
// nil-check. When METRICS_TEXTFILE is configured the CLI swaps in a
// PrometheusRecorder and writes its registry to that file on exit, in the
// node_exporter textfile collector format.
package metrics

// Recorder defines observability hooks for guessing sessions.
type Recorder interface {
	IncRound(difficulty string, outcome string) // outcome: won|lost
	ObserveAttempts(difficulty string, attempts int)
	IncInvalidInput(kind string) // kind: parse|range
	SetHighScore(score int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncRound(string, string)     {}
func (NoopRecorder) ObserveAttempts(string, int) {}
func (NoopRecorder) IncInvalidInput(string)      {}
func (NoopRecorder) SetHighScore(int)            {}
