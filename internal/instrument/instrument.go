package instrument

import (
	"context"
	"time"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"localSearch/internal/opt"
)

type options struct {
	progressInterval time.Duration
}

// Option настраивает обёртку.
type Option func(*options)

// WithProgressInterval ограничивает частоту записи улучшений в лог.
// 0 - записывать каждое улучшение.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

type wrapped[S any] struct {
	name    string
	inner   opt.Optimizer[S]
	log     *zap.Logger
	metrics *Metrics
	opts    options
}

// Wrap оборачивает алгоритм: пишет в лог начало, конец, время работы и
// улучшения, а также обновляет метрики в scope с тегом algo=name.
// Результат алгоритма не изменяется.
func Wrap[S any](name string, inner opt.Optimizer[S], log *zap.Logger, scope tally.Scope, opts ...Option) opt.Optimizer[S] {
	if log == nil {
		log = zap.NewNop()
	}
	if scope == nil {
		scope = tally.NoopScope
	}
	o := options{progressInterval: time.Second}
	for _, fn := range opts {
		fn(&o)
	}
	return &wrapped[S]{
		name:    name,
		inner:   inner,
		log:     log.With(zap.String("algo", name)),
		metrics: NewMetrics(scope.Tagged(map[string]string{"algo": name})),
		opts:    o,
	}
}

func (w *wrapped[S]) Solve(ctx context.Context, pb opt.Problem[S], init S) (opt.Result[S], error) {
	w.log.Info("запуск алгоритма")

	ctx = opt.WithProgress(ctx, w.progress())

	start := time.Now()
	res, err := w.inner.Solve(ctx, pb, init)
	elapsed := time.Since(start)

	w.metrics.runs.Inc(1)
	w.metrics.duration.Record(elapsed)
	if err != nil {
		w.metrics.failures.Inc(1)
		w.log.Error("алгоритм завершился с ошибкой",
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return res, err
	}

	w.metrics.evaluations.Inc(int64(res.Evaluations))
	w.metrics.bestCost.Update(res.Cost)
	w.log.Info("алгоритм завершён",
		zap.Duration("elapsed", elapsed),
		zap.Float64("cost", res.Cost),
		zap.Int("evaluations", res.Evaluations),
		zap.Int("iterations", res.Iterations),
		zap.Int("history", len(res.History)),
	)
	return res, nil
}

func (w *wrapped[S]) progress() opt.ProgressFunc {
	logImprovement := func(iter int, cost float64) {
		w.log.Debug("улучшение", zap.Int("iter", iter), zap.Float64("cost", cost))
	}
	if w.opts.progressInterval <= 0 {
		return logImprovement
	}

	sometimes := &rate.Sometimes{Interval: w.opts.progressInterval}
	return func(iter int, cost float64) {
		sometimes.Do(func() {
			logImprovement(iter, cost)
		})
	}
}
