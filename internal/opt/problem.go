package opt

//go:generate mockgen -source=problem.go -destination=mocks/problem_mock.go -package=mocks

import "iter"

// Problem - набор операций, который задача оптимизации предоставляет движку.
// Движок не интерпретирует структуру решения S.
type Problem[S any] interface {
	// Cost - чистая детерминированная оценка решения, меньше - лучше.
	Cost(s S) float64
	// RandomSolution строит корректное случайное решение.
	RandomSolution() S
	// RandomNeighbor возвращает новое решение, соседнее с s. s не изменяется.
	RandomNeighbor(s S) S
	// AllNeighbors перечисляет в фиксированном порядке само s и всех его соседей.
	// Каждый элемент - независимая копия.
	AllNeighbors(s S) iter.Seq[S]
}
