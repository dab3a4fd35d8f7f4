package sa

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"localSearch/internal/opt"
)

// Solver - структура реализации алгоритма имитации отжига
type Solver[S any] struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый SA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
// Используется в фабриках.
func New[S any](cfg Config, rng *rand.Rand) (*Solver[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver[S]{Cfg: cfg, Rng: rng}, nil
}

// Solve - реализация эвристики.
//
// Возвращается последнее принятое решение, а не лучшее за всё время.
// История пополняется только при принятии хода: добавляется столько копий
// предыдущей текущей стоимости, сколько итераций прошло с прошлого принятия.
func (s *Solver[S]) Solve(ctx context.Context, pb opt.Problem[S], init S) (opt.Result[S], error) {
	start := time.Now()

	if err := s.Cfg.Validate(); err != nil {
		return opt.Result[S]{}, err
	}
	if s.Rng == nil {
		return opt.Result[S]{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}

	curr := opt.Clone(pb, init)
	currCost := pb.Cost(curr)
	evals := 1

	history := make([]float64, 0, s.Cfg.Iterations)
	beta := s.Cfg.Beta0
	steps := 0
	accepted := 0

	for iter := 0; iter < s.Cfg.Iterations; iter++ {
		steps++

		cand := pb.RandomNeighbor(curr)
		candCost := pb.Cost(cand)
		evals++

		// Улучшающее решение принимаем всегда,
		// иначе - по критерию Метрополиса
		improved := candCost < currCost
		accept := improved
		if !accept {
			p := math.Exp(-beta * (candCost - currCost))
			accept = s.Rng.Float64() < p
		}

		if accept {
			curr = cand
			history = opt.AppendRepeat(history, currCost, steps)
			steps = 0
			currCost = candCost
			accepted++
			if improved {
				opt.ReportProgress(ctx, iter, currCost)
			}
		}

		// Охлаждение: рост обратной температуры
		beta *= 1 + s.Cfg.Epsilon
	}

	return opt.Result[S]{
		Solution:    curr,
		Cost:        currCost,
		History:     history,
		Evaluations: evals,
		Iterations:  s.Cfg.Iterations,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"beta0":    s.Cfg.Beta0,
			"epsilon":  s.Cfg.Epsilon,
			"beta":     beta,
			"accepted": accepted,
		},
	}, nil
}
