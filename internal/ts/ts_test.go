package ts

import (
	"context"
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localSearch/internal/tsp"
)

// recording запоминает решения, окрестность которых просматривалась,
// то есть последовательность текущих решений поиска.
type recording struct {
	*tsp.Problem
	currents [][]int
}

func (r *recording) AllNeighbors(s []int) iter.Seq[[]int] {
	r.currents = append(r.currents, slices.Clone(s))
	return r.Problem.AllNeighbors(s)
}

func newRecording(t *testing.T, n int, seed int64) *recording {
	t.Helper()
	pb, err := tsp.Random(n, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return &recording{Problem: pb}
}

func TestTabuListFIFO(t *testing.T) {
	tl := newTabuList[int](3)
	for i := 1; i <= 5; i++ {
		tl.Add(i)
	}
	assert.Equal(t, 3, tl.Len())
	assert.ElementsMatch(t, []int{3, 4, 5}, tl.Items())

	oldest, ok := tl.Oldest()
	require.True(t, ok)
	assert.Equal(t, 3, oldest)

	_, ok = newTabuList[int](2).Oldest()
	assert.False(t, ok)
}

func TestSolveNeverRevisitsTabu(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 5} {
		pb := newRecording(t, 5, int64(capacity))

		solver, err := New[[]int](Config{Iterations: 40, Capacity: capacity})
		require.NoError(t, err)

		res, err := solver.Solve(context.Background(), pb, pb.RandomSolution())
		require.NoError(t, err)
		require.Equal(t, 0, res.Meta["fallbacks"])
		require.Len(t, pb.currents, 40)

		for k := 1; k < len(pb.currents); k++ {
			for _, prev := range pb.currents[max(0, k-capacity):k] {
				assert.NotEqual(t, prev, pb.currents[k], "capacity=%d iter=%d", capacity, k)
			}
		}
	}
}

func TestSolveHistory(t *testing.T) {
	pb := newRecording(t, 7, 1)
	init := pb.RandomSolution()

	solver, err := New[[]int](Config{Iterations: 15, Capacity: 4})
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), pb, init)
	require.NoError(t, err)

	assert.Len(t, res.History, res.Evaluations-1)
	for k := 1; k < len(res.History); k++ {
		assert.LessOrEqual(t, res.History[k], res.History[k-1])
	}
	assert.LessOrEqual(t, res.Cost, pb.Cost(init))
	assert.InDelta(t, pb.Cost(res.Solution), res.Cost, 1e-9)
	assert.NoError(t, pb.Validate(res.Solution))
}

func TestSolveSquare(t *testing.T) {
	pb, err := tsp.New([]tsp.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	solver, err := New[[]int](Config{Iterations: 10, Capacity: 5})
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), pb, []int{0, 2, 1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
}

func TestSolveFallbackWhenNeighborhoodIsTabu(t *testing.T) {
	pb := newRecording(t, 3, 8)

	solver, err := New[[]int](Config{Iterations: 20, Capacity: 1200})
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), pb, pb.RandomSolution())
	require.NoError(t, err)
	assert.Greater(t, res.Meta["fallbacks"], 0)
	assert.NoError(t, pb.Validate(res.Solution))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{Iterations: 0, Capacity: 1}.Validate())
	assert.Error(t, Config{Iterations: 1, Capacity: 0}.Validate())
}
