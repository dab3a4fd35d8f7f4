package greedy

import (
	"context"
	"math"
	"time"

	"localSearch/internal/opt"
)

// Solver - жадный спуск по полной окрестности.
type Solver[S any] struct {
	Cfg Config
}

// New возвращает новый солвер жадного спуска с валидацией конфигурации.
func New[S any](cfg Config) (*Solver[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver[S]{Cfg: cfg}, nil
}

// Solve переходит к лучшему соседу, пока стоимость строго убывает.
//
// Отмена контекста не считается ошибкой: возвращается лучшее найденное
// к этому моменту решение и nil.
func (s *Solver[S]) Solve(ctx context.Context, pb opt.Problem[S], init S) (opt.Result[S], error) {
	start := time.Now()

	if err := s.Cfg.Validate(); err != nil {
		return opt.Result[S]{}, err
	}

	curr := opt.Clone(pb, init)
	currCost := pb.Cost(curr)
	evals := 1

	bestCost := math.Inf(1)
	history := make([]float64, 0)
	scans := 0
	stopped := "local_optimum"

	for currCost < bestCost {
		// Для поддержки отмены через context
		if ctx.Err() != nil {
			stopped = "context"
			break
		}
		if s.Cfg.MaxScans > 0 && scans >= s.Cfg.MaxScans {
			stopped = "max_scans"
			break
		}

		bestCost = currCost
		next, nextCost, steps, _ := opt.NeighArgminCost(pb, curr, nil)
		scans++
		evals += steps
		history = opt.AppendRepeat(history, bestCost, steps)

		if nextCost < bestCost {
			opt.ReportProgress(ctx, scans, nextCost)
		}
		curr, currCost = next, nextCost
	}

	return opt.Result[S]{
		Solution:    curr,
		Cost:        currCost,
		History:     history,
		Evaluations: evals,
		Iterations:  scans,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"stopped": stopped,
		},
	}, nil
}
