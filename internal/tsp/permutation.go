package tsp

import (
	"math/rand"

	"github.com/pkg/errors"
)

// ValidateTour проверяет, что tour - перестановка городов 0..n-1.
func ValidateTour(tour []int, n int) error {
	if len(tour) != n {
		return errors.Errorf("длина маршрута должна быть %d (получено %d)", n, len(tour))
	}
	seen := make([]bool, n)
	for i, v := range tour {
		if v < 0 || v >= n {
			return errors.Errorf("tour[%d]=%d вне диапазона [0,%d)", i, v, n)
		}
		if seen[v] {
			return errors.Errorf("город %d встречается в маршруте дважды", v)
		}
		seen[v] = true
	}
	return nil
}

// initPermutation генерирует срез [0, 1, 2, ..., n-1].
func initPermutation(p []int) {
	for i := range p {
		p[i] = i
	}
}

// shufflePermutation выполняет случайную перестановку элементов.
func shufflePermutation(p []int, rng *rand.Rand) {
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

// swapPair выбирает две различные случайные позиции.
func swapPair(n int, rng *rand.Rand) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
