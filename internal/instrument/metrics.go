package instrument

import (
	"github.com/uber-go/tally/v4"
)

// Metrics - метрики запусков одного алгоритма.
type Metrics struct {
	runs        tally.Counter
	failures    tally.Counter
	evaluations tally.Counter
	duration    tally.Timer
	bestCost    tally.Gauge
}

// NewMetrics возвращает метрики, зарегистрированные в scope.
func NewMetrics(scope tally.Scope) *Metrics {
	return &Metrics{
		runs:        scope.Counter("runs"),
		failures:    scope.Counter("failures"),
		evaluations: scope.Counter("evaluations"),
		duration:    scope.Timer("duration"),
		bestCost:    scope.Gauge("best_cost"),
	}
}
