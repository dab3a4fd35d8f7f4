package timetable

import (
	"fmt"
	"io"
	"iter"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Free обозначает слот без занятия.
const Free = 0

// Problem - задача составления расписания. Решение s[group][slot] содержит
// номер преподавателя 1..Profs или Free.
type Problem struct {
	Params Params
	Rng    *rand.Rand

	// alloc[group] - преподаватели, закреплённые за классом
	alloc [][]int
}

func New(params Params, rng *rand.Rand) (*Problem, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("генератор случайных чисел не инициализирован (nil)")
	}
	return &Problem{
		Params: params,
		Rng:    rng,
		alloc:  allocate(params),
	}, nil
}

// allocate распределяет преподавателей по классам: список, где каждый
// преподаватель повторён GroupsPerProf раз, раскладывается по классам с шагом Groups.
func allocate(p Params) [][]int {
	toBeAffected := make([]int, 0, p.Profs*p.GroupsPerProf)
	for prof := 1; prof <= p.Profs; prof++ {
		for k := 0; k < p.GroupsPerProf; k++ {
			toBeAffected = append(toBeAffected, prof)
		}
	}

	alloc := make([][]int, p.Groups)
	for g := range alloc {
		alloc[g] = make([]int, p.ProfsPerGroup)
		for i := range alloc[g] {
			alloc[g][i] = toBeAffected[g+i*p.Groups]
		}
	}
	return alloc
}

// Allocation возвращает копию закрепления преподавателей за классами.
func (p *Problem) Allocation() [][]int {
	return p.Clone(p.alloc)
}

// Collisions - количество ситуаций, когда преподаватель в одном слоте
// ведёт занятия сразу у нескольких классов.
func (p *Problem) Collisions(s [][]int) int {
	collisions := 0
	needed := make([]int, p.Params.Profs+1)
	for slot := 0; slot < p.Params.Slots; slot++ {
		for group := 0; group < p.Params.Groups; group++ {
			needed[s[group][slot]]++
		}
		for prof := 1; prof <= p.Params.Profs; prof++ {
			if needed[prof] != 0 {
				collisions += needed[prof] - 1
			}
		}
		clear(needed)
	}
	return collisions
}

func (p *Problem) Cost(s [][]int) float64 {
	return float64(p.Collisions(s))
}

func (p *Problem) RandomSolution() [][]int {
	s := make([][]int, p.Params.Groups)
	for group := range s {
		row := make([]int, 0, p.Params.Slots)
		for k := 0; k < p.Params.CoursesPerProf; k++ {
			row = append(row, p.alloc[group]...)
		}
		for k := 0; k < p.Params.FreeSlots(); k++ {
			row = append(row, Free)
		}
		p.Rng.Shuffle(len(row), func(i, j int) {
			row[i], row[j] = row[j], row[i]
		})
		s[group] = row
	}
	return s
}

// RandomNeighbor меняет местами два различных слота у случайного класса.
func (p *Problem) RandomNeighbor(s [][]int) [][]int {
	res := p.Clone(s)
	if p.Params.Slots < 2 {
		return res
	}
	group := p.Rng.Intn(p.Params.Groups)
	i := p.Rng.Intn(p.Params.Slots)
	j := p.Rng.Intn(p.Params.Slots - 1)
	if j >= i {
		j++
	}
	res[group][i], res[group][j] = res[group][j], res[group][i]
	return res
}

// AllNeighbors перечисляет s и все расписания, получаемые обменом двух
// слотов внутри одного класса: 1 + Groups*Slots*(Slots-1)/2 элементов.
func (p *Problem) AllNeighbors(s [][]int) iter.Seq[[][]int] {
	return func(yield func([][]int) bool) {
		buf := p.Clone(s)
		if !yield(p.Clone(buf)) {
			return
		}
		for group := range buf {
			row := buf[group]
			for i := 0; i < len(row); i++ {
				for j := i + 1; j < len(row); j++ {
					row[i], row[j] = row[j], row[i]
					more := yield(p.Clone(buf))
					row[i], row[j] = row[j], row[i]
					if !more {
						return
					}
				}
			}
		}
	}
}

func (p *Problem) Equal(a, b [][]int) bool {
	return slices.EqualFunc(a, b, slices.Equal[[]int])
}

func (p *Problem) Clone(s [][]int) [][]int {
	res := make([][]int, len(s))
	for i, row := range s {
		res[i] = slices.Clone(row)
	}
	return res
}

// Validate проверяет структурную корректность решения:
//   - размер Groups×Slots, значения от Free до Profs;
//   - класс получает занятия только от закреплённых преподавателей;
//   - каждый закреплённый преподаватель ведёт в классе ровно CoursesPerProf занятий.
func (p *Problem) Validate(s [][]int) error {
	if len(s) != p.Params.Groups {
		return errors.Errorf("количество классов должно быть %d (получено %d)", p.Params.Groups, len(s))
	}
	for group, row := range s {
		if len(row) != p.Params.Slots {
			return errors.Errorf("класс %d: количество слотов должно быть %d (получено %d)", group, p.Params.Slots, len(row))
		}

		want := make(map[int]int, len(p.alloc[group]))
		for _, prof := range p.alloc[group] {
			want[prof] += p.Params.CoursesPerProf
		}

		got := make(map[int]int, len(want))
		for slot, prof := range row {
			if prof < Free || prof > p.Params.Profs {
				return errors.Errorf("класс %d, слот %d: преподаватель %d вне диапазона [0,%d]", group, slot, prof, p.Params.Profs)
			}
			if prof == Free {
				continue
			}
			if _, ok := want[prof]; !ok {
				return errors.Errorf("класс %d, слот %d: преподаватель %d не закреплён за классом", group, slot, prof)
			}
			got[prof]++
		}
		for prof, n := range want {
			if got[prof] != n {
				return errors.Errorf("класс %d: преподаватель %d ведёт %d занятий вместо %d", group, prof, got[prof], n)
			}
		}
	}
	return nil
}

// Format печатает расписание: строка на класс, слоты через табуляцию.
func (p *Problem) Format(w io.Writer, s [][]int) error {
	for _, row := range s {
		cells := make([]string, len(row))
		for i, prof := range row {
			cells[i] = strconv.Itoa(prof)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}
