package rgreedy

import (
	"context"
	"time"

	"localSearch/internal/opt"
)

// Solver - рандомизированный жадный спуск: на каждой итерации
// рассматривается один случайный сосед последнего принятого решения.
type Solver[S any] struct {
	Cfg Config
}

func New[S any](cfg Config) (*Solver[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver[S]{Cfg: cfg}, nil
}

// Solve принимает соседа только при строгом улучшении. История содержит
// текущую лучшую стоимость после каждой итерации.
func (s *Solver[S]) Solve(ctx context.Context, pb opt.Problem[S], init S) (opt.Result[S], error) {
	start := time.Now()

	if err := s.Cfg.Validate(); err != nil {
		return opt.Result[S]{}, err
	}

	best := opt.Clone(pb, init)
	bestCost := pb.Cost(best)
	evals := 1
	accepted := 0

	history := make([]float64, 0, s.Cfg.Iterations)

	for iter := 0; iter < s.Cfg.Iterations; iter++ {
		cand := pb.RandomNeighbor(best)
		candCost := pb.Cost(cand)
		evals++

		if candCost < bestCost {
			best, bestCost = cand, candCost
			accepted++
			opt.ReportProgress(ctx, iter, bestCost)
		}
		history = append(history, bestCost)
	}

	return opt.Result[S]{
		Solution:    best,
		Cost:        bestCost,
		History:     history,
		Evaluations: evals,
		Iterations:  s.Cfg.Iterations,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"accepted": accepted,
		},
	}, nil
}
