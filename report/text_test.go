package report

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/dualsimplex/model"
	"q.log/dualsimplex/rational"
	"q.log/dualsimplex/simplex"
)

func TestTextInfeasible(t *testing.T) {
	p, err := model.FromInts(
		[][]int64{
			{1, 1, 1, 0},
			{0, 2, 0, 1},
		},
		[]int64{-1, 2},
		[]int64{0, -1, -1, 0},
		[]int{0, 3},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = simplex.Solve(p, NewText(&buf))
	require.True(t, errors.Is(err, simplex.ErrInfeasible))

	out := buf.String()
	assert.Contains(t, out, "Initial Tableau:\n")
	assert.Contains(t, out, "Iteration 1:\nPivot row selected: R1 (RHS = -1)\n")
	assert.Contains(t, out, "No feasible solution exists: all entries in the pivot row are non-negative.\n")
	assert.NotContains(t, out, "Updated Tableau:")
}

func TestTextTwoPivots(t *testing.T) {
	p, err := model.FromInts(
		[][]int64{
			{-1, -1, 1, 0},
			{-1, -3, 0, 1},
		},
		[]int64{-4, -6},
		[]int64{-2, -3, 0, 0},
		[]int{2, 3},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = simplex.Solve(p, NewText(&buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Iteration 1:\nPivot row selected: R2 (RHS = -6)\nPivot column selected: x2\n")
	assert.Contains(t, out, "Iteration 2:\nPivot row selected: R1 (RHS = -2)\nPivot column selected: x1\n")
	assert.Contains(t, out, "  R1 / (-2/3) -> R1\n")
	assert.Contains(t, out, "  x1 = 3\n  x2 = 1\nFinal objective value: -9\n")
}

func TestFormatRowOp(t *testing.T) {
	f, err := rational.NewFrac(-2, 3)
	require.NoError(t, err)
	assert.Equal(t, "R1 / (-2/3) -> R1", FormatRowOp(simplex.RowOp{Target: 0, Source: 0, Factor: f, Scale: true}))
	assert.Equal(t, "R4 - (3)*R2 -> R4", FormatRowOp(simplex.RowOp{Target: 3, Source: 1, Factor: rational.New(3)}))
}

func TestMultiAndRecorder(t *testing.T) {
	p, err := model.FromInts(
		[][]int64{
			{-1, -1, 1, 0},
			{-1, -3, 0, 1},
		},
		[]int64{-4, -6},
		[]int64{-2, -3, 0, 0},
		[]int{2, 3},
	)
	require.NoError(t, err)

	var a, b Recorder
	_, err = simplex.Solve(p, Multi{&a, &b})
	require.NoError(t, err)

	for _, r := range []*Recorder{&a, &b} {
		require.True(t, r.Done)
		assert.Len(t, r.Steps, 2)
		assert.Len(t, r.Snapshots(), 3)
		assert.Equal(t, simplex.Optimal, r.Outcome.Status)
		assert.Equal(t, []int{2, 3}, r.Initial.Basis)
	}
}

func TestTextNoValidRatio(t *testing.T) {
	p, err := model.FromInts(
		[][]int64{
			{1, 1, 1, 0},
			{0, 2, 0, 1},
		},
		[]int64{-1, 2},
		[]int64{0, -1, -1, 0},
		[]int{0, 3},
	)
	require.NoError(t, err)

	var rec Recorder
	_, err = simplex.Solve(p, &rec)
	require.Error(t, err)

	o := rec.Outcome
	o.Cause = simplex.NoValidRatio
	var buf bytes.Buffer
	NewText(&buf).Finish(o)
	assert.Equal(t, "Iteration 1:\n"+
		"Pivot row selected: R1 (RHS = -1)\n"+
		"No feasible solution exists: No pivot column found (all entries are non-negative in the pivot row).\n",
		buf.String())
}
