package opt

import (
	"context"
	"reflect"
	"time"
)

// Equaler реализуется задачами, умеющими сравнивать решения быстрее reflect.
type Equaler[S any] interface {
	Equal(a, b S) bool
}

// Cloner реализуется задачами, решения которых содержат разделяемую память.
type Cloner[S any] interface {
	Clone(s S) S
}

// Optimizer - общий интерфейс всех алгоритмов поиска.
type Optimizer[S any] interface {
	Solve(ctx context.Context, pb Problem[S], init S) (Result[S], error)
}

type Result[S any] struct {
	Solution    S
	Cost        float64
	History     []float64
	Evaluations int
	Iterations  int
	Duration    time.Duration
	Meta        map[string]any
}

// Same сравнивает решения структурно.
func Same[S any](pb Problem[S], a, b S) bool {
	if eq, ok := pb.(Equaler[S]); ok {
		return eq.Equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// Clone возвращает независимую копию решения, если задача это поддерживает.
func Clone[S any](pb Problem[S], s S) S {
	if c, ok := pb.(Cloner[S]); ok {
		return c.Clone(s)
	}
	return s
}
