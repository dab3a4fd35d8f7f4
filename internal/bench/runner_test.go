package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localSearch/internal/greedy"
	"localSearch/internal/opt"
	"localSearch/internal/sa"
	"localSearch/internal/tsp"
)

func tspCase(n int) Case[[]int] {
	return Case[[]int]{
		Name:         "tsp",
		InstanceSeed: 77,
		Problem: func(seed int64) (opt.Problem[[]int], error) {
			return tsp.Random(n, rand.New(rand.NewSource(seed)))
		},
	}
}

func greedyAlgo() Algorithm[[]int] {
	return Algorithm[[]int]{
		Name: "GREEDY",
		Factory: func(int64) (opt.Optimizer[[]int], error) {
			return greedy.New[[]int](greedy.DefaultConfig())
		},
	}
}

func saAlgo() Algorithm[[]int] {
	return Algorithm[[]int]{
		Name: "SA",
		Factory: func(seed int64) (opt.Optimizer[[]int], error) {
			return sa.New[[]int](sa.Config{Iterations: 200, Beta0: 1, Epsilon: 0.01}, rand.New(rand.NewSource(seed)))
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunCase(t *testing.T) {
	r := Runner{Runs: 3, BaseSeed: 1}

	rec, err := RunCase(context.Background(), r, tspCase(8), greedyAlgo())
	require.NoError(t, err)

	assert.Equal(t, "GREEDY", rec.Algo)
	assert.Equal(t, "tsp", rec.Problem)
	assert.Equal(t, 3, rec.Runs)
	assert.LessOrEqual(t, rec.CostBest, rec.CostMean)
	assert.Greater(t, rec.EvaluationsMean, 0.0)
	require.NotEmpty(t, rec.History)
	assert.Equal(t, rec.CostBest, rec.History[len(rec.History)-1])
}

func TestRunCaseErrors(t *testing.T) {
	r := Runner{Runs: 2}

	bad := Algorithm[[]int]{
		Name: "BAD",
		Factory: func(int64) (opt.Optimizer[[]int], error) {
			return nil, errors.New("boom")
		},
	}
	_, err := RunCase(context.Background(), r, tspCase(5), bad)
	assert.ErrorContains(t, err, "boom")

	broken := Case[[]int]{
		Name: "broken",
		Problem: func(int64) (opt.Problem[[]int], error) {
			return tsp.Random(0, rand.New(rand.NewSource(1)))
		},
	}
	_, err = RunCase(context.Background(), r, broken, greedyAlgo())
	assert.Error(t, err)
}

// cancelOnSolve отменяет контекст серии в начале запуска.
type cancelOnSolve struct {
	cancel context.CancelFunc
	inner  opt.Optimizer[[]int]
}

func (c *cancelOnSolve) Solve(ctx context.Context, pb opt.Problem[[]int], init []int) (opt.Result[[]int], error) {
	c.cancel()
	return c.inner.Solve(ctx, pb, init)
}

func TestRunCaseStopsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	algo := Algorithm[[]int]{
		Name: "GREEDY",
		Factory: func(int64) (opt.Optimizer[[]int], error) {
			calls++
			inner, err := greedy.New[[]int](greedy.DefaultConfig())
			if err != nil {
				return nil, err
			}
			return &cancelOnSolve{cancel: cancel, inner: inner}, nil
		},
	}

	rec, err := RunCase(ctx, Runner{Runs: 5, BaseSeed: 1}, tspCase(6), algo)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, rec.Runs)
	assert.True(t, rec.Interrupted)
}

func TestRunCaseCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	algo := Algorithm[[]int]{
		Name: "GREEDY",
		Factory: func(int64) (opt.Optimizer[[]int], error) {
			calls++
			return greedy.New[[]int](greedy.DefaultConfig())
		},
	}

	_, err := RunCase(ctx, Runner{Runs: 5}, tspCase(6), algo)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestRunCaseNotInterrupted(t *testing.T) {
	rec, err := RunCase(context.Background(), Runner{Runs: 2}, tspCase(5), greedyAlgo())
	require.NoError(t, err)
	assert.False(t, rec.Interrupted)
	assert.Equal(t, 2, rec.Runs)
}

func TestBaseline(t *testing.T) {
	c := tspCase(9)
	rec, err := Baseline(c, "NAIVE", func(pb opt.Problem[[]int]) ([]int, error) {
		return pb.(*tsp.Problem).NearestNeighbor(0), nil
	})
	require.NoError(t, err)

	pb, err := c.Problem(c.InstanceSeed)
	require.NoError(t, err)
	want := pb.Cost(pb.(*tsp.Problem).NearestNeighbor(0))

	assert.Equal(t, "NAIVE", rec.Algo)
	assert.Equal(t, 1, rec.Runs)
	assert.InDelta(t, want, rec.CostBest, 1e-12)
	assert.Equal(t, []float64{rec.CostBest}, rec.History)

	_, err = Baseline(c, "BROKEN", func(opt.Problem[[]int]) ([]int, error) {
		return []int{0, 0, 1}, nil
	})
	assert.ErrorContains(t, err, "invalid solution")
}

func TestWriteCSV(t *testing.T) {
	r := Runner{Runs: 2, BaseSeed: 5}
	var records []Record
	for _, a := range []Algorithm[[]int]{greedyAlgo(), saAlgo()} {
		rec, err := RunCase(context.Background(), r, tspCase(6), a)
		require.NoError(t, err)
		records = append(records, rec)
	}

	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "results.csv")
	require.NoError(t, WriteCSV(out, records))

	rows := readCSV(t, out)
	require.Len(t, rows, 3)
	assert.Equal(t, "algo", rows[0][0])
	assert.Equal(t, "interrupted", rows[0][len(rows[0])-1])
	assert.Equal(t, "false", rows[1][len(rows[1])-1])
	assert.Equal(t, "GREEDY", rows[1][0])
	assert.Equal(t, "SA", rows[2][0])

	hist := filepath.Join(dir, "history.csv")
	require.NoError(t, WriteHistoryCSV(hist, records))

	rows = readCSV(t, hist)
	assert.Equal(t, []string{"step", "greedy", "sa"}, rows[0])
	assert.Len(t, rows, 1+max(len(records[0].History), len(records[1].History)))
}

func TestHistoryRowsPadding(t *testing.T) {
	rows := historyRows([]Record{
		{Algo: "A", History: []float64{3, 2, 1}},
		{Algo: "B", History: []float64{5}},
	})
	assert.Equal(t, [][]string{
		{"step", "a", "b"},
		{"0", "3.000000", "5.000000"},
		{"1", "2.000000", ""},
		{"2", "1.000000", ""},
	}, rows)
}
