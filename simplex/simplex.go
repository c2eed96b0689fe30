// Package simplex implements the dual simplex method over exact rationals.
//
// The engine starts from a basis whose columns form the identity and whose
// reduced costs are meant to be dual feasible, then pivots on the row with
// the most negative right-hand side until every right-hand side is
// non-negative or a row without a negative entry proves the problem infeasible.
package simplex

import (
	"github.com/pkg/errors"
	"q.log/dualsimplex/model"
	"q.log/dualsimplex/rational"
)

// Result is the final basis of an optimal solve.
type Result struct {
	Basis    []int
	Solution []Assignment
	// X is the full primal solution, zero for non-basic variables.
	X          []rational.Rat
	Objective  rational.Rat
	Iterations int
	// DualFeasible reports whether every z_j - c_j is non-negative, which
	// certifies the basis as optimal for maximizing c·x.
	DualFeasible bool
}

// Solve runs the dual simplex on p, reporting every step to r (which may be nil).
// It returns an *InfeasibleError when no feasible basis can be reached.
// p is not modified.
func Solve(p *model.Model, r Reporter) (*Result, error) {
	if p == nil {
		return nil, errors.Wrap(model.ErrInvalidInput, "simplex: nil model")
	}
	if r == nil {
		r = nopReporter{}
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "simplex")
	}

	var (
		m, n  = p.NumRows, p.NumCols
		basis = append([]int(nil), p.Basis...)
		t     = newTableau(p)
	)
	r.Start(snapshot(t, basis, p.C))

	for iter := 0; ; iter++ {
		//optimality condition
		row := -1
		for i := range m {
			if t.RHS(i).Sign() < 0 && (row == -1 || t.RHS(i).Less(t.RHS(row))) {
				row = i
			}
		}
		if row == -1 {
			res := result(t, basis, iter)
			r.Finish(Outcome{
				Status:     Optimal,
				Final:      snapshot(t, basis, p.C),
				Solution:   append([]Assignment(nil), res.Solution...),
				Objective:  res.Objective,
				Iterations: iter,
			})
			return res, nil
		}

		if rowNonNegative(t, row) {
			return nil, infeasible(r, t, basis, p.C, row, NoPivotColumn, iter)
		}

		//dual ratio test
		var cands []Ratio
		for j := range n {
			a := t.At(row, j)
			if a.Sign() >= 0 {
				continue
			}
			q, err := t.Reduced(j).Div(a)
			if err != nil {
				return nil, errors.Wrapf(err, "ratio test on R%d", row+1)
			}
			cands = append(cands, Ratio{Column: j, Value: q})
		}
		if len(cands) == 0 {
			return nil, infeasible(r, t, basis, p.C, row, NoValidRatio, iter)
		}
		best := cands[0]
		for _, c := range cands[1:] {
			if best.Value.Less(c.Value) {
				best = c
			}
		}

		col, rhs, elem := best.Column, t.RHS(row), t.At(row, best.Column)
		ops, err := t.pivot(row, col)
		if err != nil {
			return nil, err
		}
		leaving := basis[row]
		basis[row] = col
		t.price(basis, p.C)

		r.Pivot(PivotStep{
			Iteration:  iter + 1,
			Row:        row,
			RHS:        rhs,
			Column:     col,
			Leaving:    leaving,
			Entering:   col,
			Element:    elem,
			Candidates: cands,
			Ops:        ops,
			After:      snapshot(t, basis, p.C),
		})
	}
}

func rowNonNegative(t *Tableau, row int) bool {
	for j := range t.n {
		if t.At(row, j).Sign() < 0 {
			return false
		}
	}
	return true
}

func infeasible(r Reporter, t *Tableau, basis []int, c []rational.Rat, row int, cause Cause, iter int) error {
	r.Finish(Outcome{
		Status:     Infeasible,
		Final:      snapshot(t, basis, c),
		Row:        row,
		Cause:      cause,
		Iterations: iter,
	})
	return &InfeasibleError{Row: row, Cause: cause}
}

func result(t *Tableau, basis []int, iter int) *Result {
	res := &Result{
		Basis:        append([]int(nil), basis...),
		Solution:     make([]Assignment, t.m),
		X:            make([]rational.Rat, t.n),
		Objective:    t.Objective(),
		Iterations:   iter,
		DualFeasible: true,
	}
	for i, v := range basis {
		res.Solution[i] = Assignment{Var: v, Value: t.RHS(i)}
		res.X[v] = t.RHS(i)
	}
	for j := range t.n {
		if t.Reduced(j).Sign() < 0 {
			res.DualFeasible = false
			break
		}
	}
	return res
}

func snapshot(t *Tableau, basis []int, c []rational.Rat) Snapshot {
	return Snapshot{
		Tableau: t.clone(),
		Basis:   append([]int(nil), basis...),
		C:       append([]rational.Rat(nil), c...),
	}
}
