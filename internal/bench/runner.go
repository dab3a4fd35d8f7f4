package bench

import (
	"context"
	"encoding/csv"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"localSearch/internal/opt"
)

type Algorithm[S any] struct {
	Name    string
	Factory func(seed int64) (opt.Optimizer[S], error)
}

type Case[S any] struct {
	Name         string
	InstanceSeed int64
	Problem      func(seed int64) (opt.Problem[S], error)
}

// Validator реализуется задачами, умеющими проверять структуру решения.
type Validator[S any] interface {
	Validate(s S) error
}

type Record struct {
	Algo    string
	Problem string
	Runs    int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	CostBest float64
	CostMean float64
	CostStd  float64

	EvaluationsMean float64

	// History - история запуска с лучшей итоговой стоимостью
	History []float64

	// Interrupted - серия остановлена отменой контекста, Runs меньше заказанного
	Interrupted bool
}

type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
}

// RunCase строит экземпляр задачи один раз и запускает на нём алгоритм
// r.Runs раз, каждый раз из нового случайного начального решения.
//
// После отмены ctx новые запуски не начинаются: возвращается запись по уже
// выполненным запускам (включая прерванный) с Interrupted == true.
// Если отмена пришла до первого запуска, возвращается ошибка ctx.Err().
func RunCase[S any](ctx context.Context, r Runner, c Case[S], algo Algorithm[S]) (Record, error) {
	pb, err := c.Problem(c.InstanceSeed)
	if err != nil {
		return Record{}, errors.Wrapf(err, "case %s", c.Name)
	}

	costs := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)
	evals := make([]float64, 0, r.Runs)
	var bestHistory []float64
	interrupted := false

	for i := 0; i < r.Runs; i++ {
		if ctx.Err() != nil {
			interrupted = true
			break
		}
		runSeed := r.BaseSeed + int64(i)

		op, err := algo.Factory(runSeed)
		if err != nil {
			return Record{}, errors.Wrapf(err, "run %d: factory", i)
		}

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}
		init := pb.RandomSolution()
		start := time.Now()
		res, err := op.Solve(runCtx, pb, init)
		dur := time.Since(start)
		cancel()

		if err != nil && runCtx.Err() != nil {
			return Record{}, errors.Wrapf(err, "run %d: cancelled/timeout", i)
		}
		if err != nil {
			return Record{}, errors.Wrapf(err, "run %d: solve error", i)
		}
		if v, ok := pb.(Validator[S]); ok {
			if err := v.Validate(res.Solution); err != nil {
				return Record{}, errors.Wrapf(err, "run %d: invalid solution", i)
			}
		}

		if len(costs) == 0 || res.Cost < minOf(costs) {
			bestHistory = res.History
		}
		costs = append(costs, res.Cost)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
		evals = append(evals, float64(res.Evaluations))

		// Прерванный запуск учитывается, следующие не начинаются
		if ctx.Err() != nil {
			interrupted = true
			break
		}
	}

	if len(costs) == 0 {
		if err := ctx.Err(); err != nil {
			return Record{}, errors.Wrapf(err, "case %s: прервано до первого запуска", c.Name)
		}
		return Record{}, errors.Errorf("Runs должно быть > 0 (получено %d)", r.Runs)
	}

	cStats := CalcFloatStats(costs)
	tStats := CalcFloatStats(timesMs)
	eStats := CalcFloatStats(evals)

	return Record{
		Algo:    algo.Name,
		Problem: c.Name,
		Runs:    len(costs),

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		CostBest: cStats.Best,
		CostMean: cStats.Mean,
		CostStd:  cStats.Std,

		EvaluationsMean: eStats.Mean,
		History:         bestHistory,
		Interrupted:     interrupted,
	}, nil
}

// Baseline строит одно решение конструктивным методом на экземпляре задачи
// из c и возвращает его запись для сравнения с алгоритмами поиска.
func Baseline[S any](c Case[S], name string, construct func(pb opt.Problem[S]) (S, error)) (Record, error) {
	pb, err := c.Problem(c.InstanceSeed)
	if err != nil {
		return Record{}, errors.Wrapf(err, "case %s", c.Name)
	}

	start := time.Now()
	s, err := construct(pb)
	if err != nil {
		return Record{}, errors.Wrapf(err, "baseline %s", name)
	}
	ms := float64(time.Since(start).Microseconds()) / 1000.0

	if v, ok := pb.(Validator[S]); ok {
		if err := v.Validate(s); err != nil {
			return Record{}, errors.Wrapf(err, "baseline %s: invalid solution", name)
		}
	}

	cost := pb.Cost(s)
	return Record{
		Algo:    name,
		Problem: c.Name,
		Runs:    1,

		TimeBestMs: ms,
		TimeMeanMs: ms,

		CostBest: cost,
		CostMean: cost,

		EvaluationsMean: 1,
		History:         []float64{cost},
	}, nil
}

func WriteCSV(path string, records []Record) error {
	return writeRows(path, summaryRows(records))
}

func summaryRows(records []Record) [][]string {
	rows := [][]string{{
		"algo", "problem", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"cost_best", "cost_mean", "cost_std",
		"evaluations_mean", "interrupted",
	}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Algo,
			r.Problem,
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			ftoa(r.CostBest),
			ftoa(r.CostMean),
			ftoa(r.CostStd),

			ftoa(r.EvaluationsMean),
			btoa(r.Interrupted),
		})
	}
	return rows
}

// WriteHistoryCSV сохраняет истории лучших запусков: столбец на алгоритм,
// строка на шаг. Короткие истории дополняются пустыми ячейками.
func WriteHistoryCSV(path string, records []Record) error {
	return writeRows(path, historyRows(records))
}

func historyRows(records []Record) [][]string {
	header := []string{"step"}
	steps := 0
	for _, r := range records {
		header = append(header, strings.ToLower(r.Algo))
		steps = max(steps, len(r.History))
	}

	rows := [][]string{header}
	for i := 0; i < steps; i++ {
		row := []string{itoa(i)}
		for _, r := range records {
			cell := ""
			if i < len(r.History) {
				cell = ftoa(r.History[i])
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func writeRows(path string, rows [][]string) error {
	if d := dirOf(path); d != "" {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = min(m, v)
	}
	return m
}
