package simplex

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/dualsimplex/model"
)

func TestNewTableauPricing(t *testing.T) {
	p, err := model.FromInts(
		[][]int64{
			{1, 0, 3, -1, 0},
			{0, 1, -5, 2, 0},
			{0, 0, 18, -7, 1},
		},
		[]int64{1, 2, -3},
		[]int64{7, 4, 0, 0, 0},
		[]int{0, 1, 4},
	)
	require.NoError(t, err)

	tab := newTableau(p)
	want := map[int][]string{
		3: {"7", "4", "1", "1", "0", "15"},
		4: {"0", "0", "1", "1", "0", "15"},
	}
	for i, row := range want {
		for j, s := range row {
			assert.Equal(t, s, tab.At(i, j).String(), "cell (%d,%d)", i, j)
		}
	}
}

func TestPivotOnZeroElement(t *testing.T) {
	p, err := model.FromInts(
		[][]int64{{1, 0, 0}, {0, 1, 2}},
		[]int64{1, 1},
		[]int64{0, 0, 0},
		[]int{0, 1},
	)
	require.NoError(t, err)

	tab := newTableau(p)
	_, err = tab.pivot(0, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestPivotOps(t *testing.T) {
	p, err := model.FromInts(
		[][]int64{{1, 0, 2}, {0, 1, 4}},
		[]int64{2, 8},
		[]int64{0, 0, 1},
		[]int{0, 1},
	)
	require.NoError(t, err)

	tab := newTableau(p)
	ops, err := tab.pivot(1, 2)
	require.NoError(t, err)
	require.Len(t, ops, 4)
	assert.Equal(t, RowOp{Target: 1, Source: 1, Factor: ops[0].Factor, Scale: true}, ops[0])
	assert.Equal(t, "4", ops[0].Factor.String())
	assert.Equal(t, "2", ops[1].Factor.String())
	assert.Equal(t, 2, ops[2].Target)
	assert.Equal(t, 3, ops[3].Target)

	assert.Equal(t, "-2", tab.RHS(0).String())
	assert.Equal(t, "2", tab.RHS(1).String())
	assert.Equal(t, "1", tab.At(1, 2).String())
	assert.Equal(t, "0", tab.At(0, 2).String())
}
