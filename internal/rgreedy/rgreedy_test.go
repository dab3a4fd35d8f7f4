package rgreedy_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"localSearch/internal/opt/mocks"
	"localSearch/internal/rgreedy"
	"localSearch/internal/timetable"
)

func TestSolveTimetable(t *testing.T) {
	pb, err := timetable.New(timetable.DefaultParams(), rand.New(rand.NewSource(21)))
	require.NoError(t, err)
	init := pb.RandomSolution()

	solver, err := rgreedy.New[[][]int](rgreedy.Config{Iterations: 300})
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), pb, init)
	require.NoError(t, err)

	require.Len(t, res.History, 300)
	for k := 1; k < len(res.History); k++ {
		assert.LessOrEqual(t, res.History[k], res.History[k-1])
	}
	assert.LessOrEqual(t, res.Cost, pb.Cost(init))
	assert.Equal(t, pb.Cost(res.Solution), res.Cost)
	assert.NoError(t, pb.Validate(res.Solution))
	assert.NoError(t, pb.Validate(init), "начальное решение не должно изменяться")
}

func TestSolveDrawsFromLastAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	pb := mocks.NewMockProblem[int](ctrl)
	costs := map[int]float64{0: 5, 1: 6, 2: 3, 3: 4}
	pb.EXPECT().Cost(gomock.Any()).DoAndReturn(func(s int) float64 { return costs[s] }).AnyTimes()
	gomock.InOrder(
		pb.EXPECT().RandomNeighbor(0).Return(1), // хуже - отклоняется
		pb.EXPECT().RandomNeighbor(0).Return(2), // лучше - принимается
		pb.EXPECT().RandomNeighbor(2).Return(3), // хуже - отклоняется
	)

	solver, err := rgreedy.New[int](rgreedy.Config{Iterations: 3})
	require.NoError(t, err)

	res, err := solver.Solve(context.Background(), pb, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Solution)
	assert.Equal(t, []float64{5, 3, 3}, res.History)
	assert.Equal(t, 1, res.Meta["accepted"])
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, rgreedy.DefaultConfig().Validate())
	_, err := rgreedy.New[int](rgreedy.Config{})
	assert.Error(t, err)
}
