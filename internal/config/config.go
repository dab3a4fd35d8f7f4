package config

import (
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"localSearch/internal/greedy"
	"localSearch/internal/mc"
	"localSearch/internal/rgreedy"
	"localSearch/internal/sa"
	"localSearch/internal/timetable"
	"localSearch/internal/ts"
)

// Виды задач
const (
	KindTimetable = "timetable"
	KindTSP       = "tsp"
)

// Имена алгоритмов
const (
	AlgoMonteCarlo   = "MC"
	AlgoGreedy       = "GREEDY"
	AlgoRandomGreedy = "RGREEDY"
	AlgoTabu         = "TS"
	AlgoAnnealing    = "SA"
)

// Algorithms - все поддерживаемые алгоритмы в порядке запуска по умолчанию.
var Algorithms = []string{AlgoMonteCarlo, AlgoGreedy, AlgoRandomGreedy, AlgoTabu, AlgoAnnealing}

// File - конфигурация запуска.
type File struct {
	Problem Problem `yaml:"problem"`

	MonteCarlo   mc.Config      `yaml:"monte_carlo"`
	Greedy       greedy.Config  `yaml:"greedy"`
	RandomGreedy rgreedy.Config `yaml:"random_greedy"`
	Tabu         ts.Config      `yaml:"tabu"`
	Annealing    sa.Config      `yaml:"annealing"`

	Bench   Bench   `yaml:"bench"`
	Logging Logging `yaml:"logging"`
}

type Problem struct {
	Kind      string           `yaml:"kind"`
	Timetable timetable.Params `yaml:"timetable"`
	TSP       TSP              `yaml:"tsp"`
}

type TSP struct {
	Cities int `yaml:"cities"`
}

type Bench struct {
	Algorithms    []string      `yaml:"algorithms"`
	Runs          int           `yaml:"runs"`
	Seed          int64         `yaml:"seed"`
	InstanceSeed  int64         `yaml:"instance_seed"`
	PerRunTimeout time.Duration `yaml:"per_run_timeout"` // 0 = без ограничения
	Out           string        `yaml:"out"`
	HistoryOut    string        `yaml:"history_out"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default возвращает конфигурацию по умолчанию для вида задачи.
// Параметры алгоритмов зависят от размера задачи.
func Default(kind string) File {
	f := File{
		Problem: Problem{
			Kind:      kind,
			Timetable: timetable.DefaultParams(),
			TSP:       TSP{Cities: 200},
		},
		MonteCarlo:   mc.DefaultConfig(),
		Greedy:       greedy.DefaultConfig(),
		RandomGreedy: rgreedy.DefaultConfig(),
		Tabu:         ts.DefaultConfig(),
		Annealing:    sa.DefaultConfig(),
		Bench: Bench{
			Algorithms:   slices.Clone(Algorithms),
			Runs:         10,
			Seed:         1000,
			InstanceSeed: 777,
			Out:          "artifacts/results.csv",
			HistoryOut:   "artifacts/history.csv",
		},
		Logging: Logging{Level: "info", Format: "dev"},
	}

	switch kind {
	case KindTSP:
		n := float64(f.Problem.TSP.Cities)
		f.MonteCarlo.Iterations = 7000
		f.RandomGreedy.Iterations = 7000
		f.Annealing = sa.Config{Iterations: 7000, Beta0: n / 120, Epsilon: 10 / n}
	default:
		p := f.Problem.Timetable
		size := float64(p.Slots * p.Groups)
		f.Annealing = sa.Config{Iterations: 800, Beta0: size / 100, Epsilon: 10 / size}
	}
	return f
}

// Load читает YAML-файл и накладывает его на значения по умолчанию
// для указанного в нём вида задачи.
func Load(path string) (File, error) {
	return LoadKind(path, "")
}

// LoadKind аналогичен Load, но вид задачи kind, если задан, имеет приоритет
// над указанным в файле: от него зависят значения по умолчанию.
func LoadKind(path, kind string) (File, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "не удалось прочитать файл конфигурации %q", path)
	}

	var head struct {
		Problem struct {
			Kind string `yaml:"kind"`
		} `yaml:"problem"`
	}
	if err := yaml.Unmarshal(buf, &head); err != nil {
		return File{}, errors.Wrap(err, "ошибка разбора конфигурации")
	}
	override := kind != ""
	if !override {
		kind = head.Problem.Kind
	}
	if kind == "" {
		kind = KindTimetable
	}

	f := Default(kind)
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return File{}, errors.Wrap(err, "ошибка разбора конфигурации")
	}
	if override {
		f.Problem.Kind = kind
	}
	return f, nil
}

func (f File) Validate() error {
	switch f.Problem.Kind {
	case KindTimetable:
		if err := f.Problem.Timetable.Validate(); err != nil {
			return errors.Wrap(err, "problem.timetable")
		}
	case KindTSP:
		if f.Problem.TSP.Cities <= 0 {
			return errors.Errorf("problem.tsp: количество городов должно быть > 0 (получено %d)", f.Problem.TSP.Cities)
		}
	default:
		return errors.Errorf("неизвестный вид задачи %q", f.Problem.Kind)
	}

	if err := f.MonteCarlo.Validate(); err != nil {
		return errors.Wrap(err, "monte_carlo")
	}
	if err := f.Greedy.Validate(); err != nil {
		return errors.Wrap(err, "greedy")
	}
	if err := f.RandomGreedy.Validate(); err != nil {
		return errors.Wrap(err, "random_greedy")
	}
	if err := f.Tabu.Validate(); err != nil {
		return errors.Wrap(err, "tabu")
	}
	if err := f.Annealing.Validate(); err != nil {
		return errors.Wrap(err, "annealing")
	}

	if f.Bench.Runs <= 0 {
		return errors.Errorf("bench.runs должно быть > 0 (получено %d)", f.Bench.Runs)
	}
	if f.Bench.PerRunTimeout < 0 {
		return errors.Errorf("bench.per_run_timeout должно быть >= 0 (получено %s)", f.Bench.PerRunTimeout)
	}
	if len(f.Bench.Algorithms) == 0 {
		return errors.New("bench.algorithms: список алгоритмов пуст")
	}
	for _, a := range f.Bench.Algorithms {
		if !slices.Contains(Algorithms, a) {
			return errors.Errorf("bench.algorithms: неизвестный алгоритм %q; доступные: %v", a, Algorithms)
		}
	}
	return nil
}
