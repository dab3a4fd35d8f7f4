package mc

import (
	"context"
	"math"
	"time"

	"localSearch/internal/opt"
)

// Solver - метод Монте-Карло: независимая выборка случайных решений.
type Solver[S any] struct {
	Cfg Config
}

func New[S any](cfg Config) (*Solver[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver[S]{Cfg: cfg}, nil
}

// Solve не использует начальное решение: все кандидаты берутся из RandomSolution.
func (s *Solver[S]) Solve(ctx context.Context, pb opt.Problem[S], _ S) (opt.Result[S], error) {
	start := time.Now()

	if err := s.Cfg.Validate(); err != nil {
		return opt.Result[S]{}, err
	}

	var best S
	bestCost := math.Inf(1)
	history := make([]float64, 0, s.Cfg.Iterations)

	for iter := 0; iter < s.Cfg.Iterations; iter++ {
		cand := pb.RandomSolution()
		candCost := pb.Cost(cand)
		if iter == 0 || candCost < bestCost {
			best, bestCost = cand, candCost
			opt.ReportProgress(ctx, iter, bestCost)
		}
		history = append(history, bestCost)
	}

	return opt.Result[S]{
		Solution:    best,
		Cost:        bestCost,
		History:     history,
		Evaluations: s.Cfg.Iterations,
		Iterations:  s.Cfg.Iterations,
		Duration:    time.Since(start),
	}, nil
}
