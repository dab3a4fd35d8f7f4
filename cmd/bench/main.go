package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"localSearch/internal/bench"
	"localSearch/internal/config"
	"localSearch/internal/greedy"
	"localSearch/internal/instrument"
	"localSearch/internal/logging"
	"localSearch/internal/mc"
	"localSearch/internal/opt"
	"localSearch/internal/rgreedy"
	"localSearch/internal/sa"
	"localSearch/internal/timetable"
	"localSearch/internal/ts"
	"localSearch/internal/tsp"
)

var (
	app = kingpin.New("bench", "Сравнение алгоритмов локального поиска на задачах расписания и коммивояжёра")

	configFile = app.Flag("config", "путь к YAML-файлу конфигурации").Short('c').String()
	problem    = app.Flag("problem", "вид задачи: timetable | tsp").String()
	algos      = app.Flag("algos", "список алгоритмов: MC, GREEDY, RGREEDY, TS, SA (через запятую)").String()
	runs       = app.Flag("runs", "количество запусков каждого алгоритма (с разными сидами)").Int()
	seed       = app.Flag("seed", "базовый сид для запусков алгоритмов").Int64()
	out        = app.Flag("out", "путь к выходному CSV-файлу со сводкой").String()
	historyOut = app.Flag("history-out", "путь к CSV-файлу с историями стоимости").String()
	logLevel   = app.Flag("log-level", "уровень логирования: debug | info | warn | error").String()
	logFormat  = app.Flag("log-format", "формат логов: dev | json").String()
)

// naiveAlgo - запись базового маршрута ближайшего соседа в сводке TSP
const naiveAlgo = "NAIVE"

// Фабрики

func newMCFactory[S any](cfg mc.Config, log *zap.Logger, scope tally.Scope) func(seed int64) (opt.Optimizer[S], error) {
	return func(int64) (opt.Optimizer[S], error) {
		solver, err := mc.New[S](cfg)
		if err != nil {
			return nil, err
		}
		return instrument.Wrap[S](config.AlgoMonteCarlo, solver, log, scope), nil
	}
}

func newGreedyFactory[S any](cfg greedy.Config, log *zap.Logger, scope tally.Scope) func(seed int64) (opt.Optimizer[S], error) {
	return func(int64) (opt.Optimizer[S], error) {
		solver, err := greedy.New[S](cfg)
		if err != nil {
			return nil, err
		}
		return instrument.Wrap[S](config.AlgoGreedy, solver, log, scope), nil
	}
}

func newRandomGreedyFactory[S any](cfg rgreedy.Config, log *zap.Logger, scope tally.Scope) func(seed int64) (opt.Optimizer[S], error) {
	return func(int64) (opt.Optimizer[S], error) {
		solver, err := rgreedy.New[S](cfg)
		if err != nil {
			return nil, err
		}
		return instrument.Wrap[S](config.AlgoRandomGreedy, solver, log, scope), nil
	}
}

func newTSFactory[S any](cfg ts.Config, log *zap.Logger, scope tally.Scope) func(seed int64) (opt.Optimizer[S], error) {
	return func(int64) (opt.Optimizer[S], error) {
		solver, err := ts.New[S](cfg)
		if err != nil {
			return nil, err
		}
		return instrument.Wrap[S](config.AlgoTabu, solver, log, scope), nil
	}
}

func newSAFactory[S any](cfg sa.Config, log *zap.Logger, scope tally.Scope) func(seed int64) (opt.Optimizer[S], error) {
	return func(seed int64) (opt.Optimizer[S], error) {
		solver, err := sa.New[S](cfg, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, err
		}
		return instrument.Wrap[S](config.AlgoAnnealing, solver, log, scope), nil
	}
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Конфликт в конфигурации:", err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка инициализации логгера:", err)
		os.Exit(1)
	}
	defer log.Sync()

	scope, closer := tally.NewRootScope(tally.ScopeOptions{Prefix: "local_search"}, time.Second)
	defer closer.Close()

	// Первое прерывание с клавиатуры останавливает серию запусков,
	// собранные результаты сохраняются. Повторное завершает процесс.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	var records []bench.Record
	switch cfg.Problem.Kind {
	case config.KindTSP:
		c := bench.Case[[]int]{
			Name:         fmt.Sprintf("tsp-%d", cfg.Problem.TSP.Cities),
			InstanceSeed: cfg.Bench.InstanceSeed,
			Problem: func(seed int64) (opt.Problem[[]int], error) {
				return tsp.Random(cfg.Problem.TSP.Cities, rand.New(rand.NewSource(seed)))
			},
		}
		var naive bench.Record
		naive, err = bench.Baseline(c, naiveAlgo, func(pb opt.Problem[[]int]) ([]int, error) {
			return pb.(*tsp.Problem).NaiveSolution(), nil
		})
		if err != nil {
			break
		}
		log.Info("Базовый маршрут ближайшего соседа", zap.Float64("cost", naive.CostBest))
		records, err = run(ctx, cfg, c, log, scope)
		records = append([]bench.Record{naive}, records...)
	default:
		p := cfg.Problem.Timetable
		c := bench.Case[[][]int]{
			Name:         fmt.Sprintf("timetable-%dx%dx%d", p.Slots, p.Profs, p.Groups),
			InstanceSeed: cfg.Bench.InstanceSeed,
			Problem: func(seed int64) (opt.Problem[[][]int], error) {
				return timetable.New(p, rand.New(rand.NewSource(seed)))
			},
		}
		records, err = run(ctx, cfg, c, log, scope)
	}
	if err != nil {
		log.Error("Ошибка", zap.Error(err))
		os.Exit(1)
	}

	if err := bench.WriteCSV(cfg.Bench.Out, records); err != nil {
		log.Error("Ошибка при записи в CSV", zap.Error(err))
		os.Exit(1)
	}
	if cfg.Bench.HistoryOut != "" {
		if err := bench.WriteHistoryCSV(cfg.Bench.HistoryOut, records); err != nil {
			log.Error("Ошибка при записи истории в CSV", zap.Error(err))
			os.Exit(1)
		}
	}
	log.Info("Saved", zap.String("out", cfg.Bench.Out), zap.String("history_out", cfg.Bench.HistoryOut))
}

func run[S any](ctx context.Context, cfg config.File, c bench.Case[S], log *zap.Logger, scope tally.Scope) ([]bench.Record, error) {
	available := map[string]bench.Algorithm[S]{
		config.AlgoMonteCarlo:   {Name: config.AlgoMonteCarlo, Factory: newMCFactory[S](cfg.MonteCarlo, log, scope)},
		config.AlgoGreedy:       {Name: config.AlgoGreedy, Factory: newGreedyFactory[S](cfg.Greedy, log, scope)},
		config.AlgoRandomGreedy: {Name: config.AlgoRandomGreedy, Factory: newRandomGreedyFactory[S](cfg.RandomGreedy, log, scope)},
		config.AlgoTabu:         {Name: config.AlgoTabu, Factory: newTSFactory[S](cfg.Tabu, log, scope)},
		config.AlgoAnnealing:    {Name: config.AlgoAnnealing, Factory: newSAFactory[S](cfg.Annealing, log, scope)},
	}

	runner := bench.Runner{
		Runs:          cfg.Bench.Runs,
		BaseSeed:      cfg.Bench.Seed,
		PerRunTimeout: cfg.Bench.PerRunTimeout,
	}

	records := make([]bench.Record, 0, len(cfg.Bench.Algorithms))
	for _, name := range cfg.Bench.Algorithms {
		a := available[name]
		log.Info("Запущен алгоритм",
			zap.String("algo", a.Name),
			zap.String("problem", c.Name),
			zap.Int("runs", runner.Runs),
		)

		rec, err := bench.RunCase(ctx, runner, c, a)
		if err != nil && errors.Is(err, context.Canceled) {
			log.Warn("Прервано до первого запуска, оставшиеся алгоритмы пропущены", zap.String("algo", a.Name))
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Name, err)
		}
		records = append(records, rec)

		log.Info("Значение целевой функции",
			zap.String("algo", rec.Algo),
			zap.Float64("best", rec.CostBest),
			zap.Float64("mean", rec.CostMean),
			zap.Float64("std", rec.CostStd),
			zap.Float64("time_mean_ms", rec.TimeMeanMs),
			zap.Float64("time_std_ms", rec.TimeStdMs),
		)

		if rec.Interrupted {
			log.Warn("Серия прервана, оставшиеся алгоритмы пропущены",
				zap.String("algo", rec.Algo),
				zap.Int("runs_done", rec.Runs),
			)
			break
		}
	}
	return records, nil
}

// loadConfig собирает конфигурацию: значения по умолчанию, файл, флаги.
func loadConfig() (config.File, error) {
	kind := *problem
	if kind == "" {
		kind = config.KindTimetable
	}

	cfg := config.Default(kind)
	if *configFile != "" {
		var err error
		if cfg, err = config.LoadKind(*configFile, *problem); err != nil {
			return config.File{}, err
		}
	}

	if *algos != "" {
		cfg.Bench.Algorithms = splitCSV(*algos)
	}
	if *runs > 0 {
		cfg.Bench.Runs = *runs
	}
	if *seed != 0 {
		cfg.Bench.Seed = *seed
	}
	if *out != "" {
		cfg.Bench.Out = *out
	}
	if *historyOut != "" {
		cfg.Bench.HistoryOut = *historyOut
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Logging.Format = *logFormat
	}

	return cfg, cfg.Validate()
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
