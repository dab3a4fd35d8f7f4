package ts

import (
	"context"
	"math"
	"time"

	"localSearch/internal/opt"
)

// Solver - структура реализации табу-поиска.
type Solver[S any] struct {
	Cfg Config
}

// New возвращает новый TS-солвер с валидацией конфигурации.
// Используется в фабриках.
func New[S any](cfg Config) (*Solver[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver[S]{Cfg: cfg}, nil
}

// Solve - основной цикл алгоритма.
//
// На каждой итерации текущее решение заносится в табу-список, после чего
// поиск переходит к лучшему не табуированному соседу из полной окрестности,
// даже если он хуже текущего. Критерия аспирации нет.
func (s *Solver[S]) Solve(ctx context.Context, pb opt.Problem[S], init S) (opt.Result[S], error) {
	start := time.Now()

	if err := s.Cfg.Validate(); err != nil {
		return opt.Result[S]{}, err
	}

	curr := opt.Clone(pb, init)
	currCost := pb.Cost(curr)
	evals := 1

	// Глобально лучшее решение
	best := curr
	bestCost := math.Inf(1)

	tabu := newTabuList[S](s.Cfg.Capacity)
	history := make([]float64, 0)
	fallbacks := 0

	for iter := 0; iter < s.Cfg.Iterations; iter++ {
		// Обновление глобально лучшего решения
		if currCost < bestCost {
			best, bestCost = curr, currCost
			opt.ReportProgress(ctx, iter, bestCost)
		}

		tabu.Add(curr)

		// Переход к лучшему допустимому соседу
		next, nextCost, steps, ok := opt.NeighArgminCost(pb, curr, tabu.Items())
		if !ok {
			// Вся окрестность табуирована
			fallbacks++
		}
		evals += steps
		history = opt.AppendRepeat(history, bestCost, steps)

		curr, currCost = next, nextCost
	}

	return opt.Result[S]{
		Solution:    best,
		Cost:        bestCost,
		History:     history,
		Evaluations: evals,
		Iterations:  s.Cfg.Iterations,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"capacity":  s.Cfg.Capacity,
			"tabu_len":  tabu.Len(),
			"fallbacks": fallbacks,
		},
	}, nil
}
