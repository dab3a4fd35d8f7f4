package tsp

import (
	"iter"
	"math"
	"math/rand"
	"slices"

	"github.com/pkg/errors"
)

// Point - координаты города на плоскости.
type Point struct {
	X float64
	Y float64
}

// Problem - задача коммивояжёра. Решение - перестановка индексов городов,
// маршрут замкнут.
type Problem struct {
	Cities []Point
	Rng    *rand.Rand
}

func New(cities []Point, rng *rand.Rand) (*Problem, error) {
	if len(cities) == 0 {
		return nil, errors.New("список городов пуст")
	}
	if rng == nil {
		return nil, errors.New("генератор случайных чисел не инициализирован (nil)")
	}
	return &Problem{Cities: slices.Clone(cities), Rng: rng}, nil
}

// Random создаёт задачу из n городов, равномерно распределённых в единичном квадрате.
func Random(n int, rng *rand.Rand) (*Problem, error) {
	if n <= 0 {
		return nil, errors.Errorf("количество городов должно быть > 0 (получено %d)", n)
	}
	if rng == nil {
		return nil, errors.New("генератор случайных чисел не инициализирован (nil)")
	}
	cities := make([]Point, n)
	for i := range cities {
		cities[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}
	return &Problem{Cities: cities, Rng: rng}, nil
}

// Len возвращает количество городов.
func (p *Problem) Len() int { return len(p.Cities) }

// Dist - евклидово расстояние между городами a и b.
func (p *Problem) Dist(a, b int) float64 {
	ca, cb := p.Cities[a], p.Cities[b]
	return math.Hypot(ca.X-cb.X, ca.Y-cb.Y)
}

// Cost - длина замкнутого маршрута.
func (p *Problem) Cost(tour []int) float64 {
	if len(tour) == 0 {
		return 0
	}
	res := 0.0
	prev := tour[len(tour)-1]
	for _, next := range tour {
		res += p.Dist(prev, next)
		prev = next
	}
	return res
}

func (p *Problem) RandomSolution() []int {
	tour := make([]int, p.Len())
	initPermutation(tour)
	shufflePermutation(tour, p.Rng)
	return tour
}

// RandomNeighbor меняет местами два случайных города.
func (p *Problem) RandomNeighbor(tour []int) []int {
	res := slices.Clone(tour)
	if len(res) < 2 {
		return res
	}
	i, j := swapPair(len(res), p.Rng)
	res[i], res[j] = res[j], res[i]
	return res
}

// AllNeighbors перечисляет tour и все маршруты, получаемые обменом двух позиций:
// 1 + n(n-1)/2 элементов.
func (p *Problem) AllNeighbors(tour []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		buf := slices.Clone(tour)
		if !yield(slices.Clone(buf)) {
			return
		}
		for i := 0; i < len(buf); i++ {
			for j := i + 1; j < len(buf); j++ {
				buf[i], buf[j] = buf[j], buf[i]
				more := yield(slices.Clone(buf))
				buf[i], buf[j] = buf[j], buf[i]
				if !more {
					return
				}
			}
		}
	}
}

func (p *Problem) Equal(a, b []int) bool { return slices.Equal(a, b) }

func (p *Problem) Clone(tour []int) []int { return slices.Clone(tour) }

// NaiveSolution строит маршрут жадно по ближайшему соседу из случайного города.
func (p *Problem) NaiveSolution() []int {
	return p.NearestNeighbor(p.Rng.Intn(p.Len()))
}

// NearestNeighbor строит маршрут, каждый раз переходя в ближайший
// ещё не посещённый город.
func (p *Problem) NearestNeighbor(start int) []int {
	n := p.Len()
	visited := make([]bool, n)
	path := make([]int, 0, n)

	city := start
	visited[city] = true
	path = append(path, city)
	for len(path) < n {
		next, shortest := -1, math.Inf(1)
		for c := 0; c < n; c++ {
			if visited[c] {
				continue
			}
			if d := p.Dist(city, c); d < shortest {
				next, shortest = c, d
			}
		}
		city = next
		visited[city] = true
		path = append(path, city)
	}
	return path
}

// Validate проверяет, что tour - корректный маршрут по всем городам задачи.
func (p *Problem) Validate(tour []int) error {
	return ValidateTour(tour, p.Len())
}
