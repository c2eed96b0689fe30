package simplex

import (
	"github.com/pkg/errors"
	"q.log/dualsimplex/model"
	"q.log/dualsimplex/rational"
)

// Tableau is the (m+2) x (n+1) dual simplex tableau. Rows 0..m-1 hold the
// constraints with the right-hand side in column n, row m holds z_j and
// row m+1 holds z_j - c_j. Column n of rows m and m+1 is the objective value.
type Tableau struct {
	m, n  int
	cells [][]rational.Rat
}

// RowOp is one elementary row operation of a pivot:
// Target /= Factor when Scale is set, Target -= Factor * Source otherwise.
type RowOp struct {
	Target int
	Source int
	Factor rational.Rat
	Scale  bool
}

func newTableau(p *model.Model) *Tableau {
	t := &Tableau{m: p.NumRows, n: p.NumCols}
	t.cells = make([][]rational.Rat, t.m+2)
	for i := range t.cells {
		t.cells[i] = make([]rational.Rat, t.n+1)
	}
	for i := range t.m {
		copy(t.cells[i], p.A[i])
		t.cells[i][t.n] = p.B[i]
	}
	t.price(p.Basis, p.C)
	return t
}

// price recomputes the z_j and z_j - c_j rows from the constraint rows.
func (t *Tableau) price(basis []int, c []rational.Rat) {
	z, red := t.cells[t.m], t.cells[t.m+1]
	for j := range t.n + 1 {
		terms := make([]rational.Rat, t.m)
		for i := range t.m {
			terms[i] = c[basis[i]].Mul(t.cells[i][j])
		}
		z[j] = rational.Sum(terms...)
	}
	for j := range t.n {
		red[j] = z[j].Sub(c[j])
	}
	red[t.n] = z[t.n]
}

// pivot makes column col a unit column with its 1 in row row.
func (t *Tableau) pivot(row, col int) ([]RowOp, error) {
	p := t.cells[row][col]
	ops := make([]RowOp, 0, t.m+2)

	for j, v := range t.cells[row] {
		q, err := v.Div(p)
		if err != nil {
			return nil, errors.Wrapf(err, "pivot on R%d, %s", row+1, model.VarName(col))
		}
		t.cells[row][j] = q
	}
	ops = append(ops, RowOp{Target: row, Source: row, Factor: p, Scale: true})

	for i := range t.cells {
		if i == row {
			continue
		}
		f := t.cells[i][col]
		ops = append(ops, RowOp{Target: i, Source: row, Factor: f})
		for j := range t.cells[i] {
			t.cells[i][j] = t.cells[i][j].Sub(f.Mul(t.cells[row][j]))
		}
	}
	return ops, nil
}

func (t *Tableau) clone() *Tableau {
	c := &Tableau{m: t.m, n: t.n, cells: make([][]rational.Rat, len(t.cells))}
	for i, row := range t.cells {
		c.cells[i] = append([]rational.Rat(nil), row...)
	}
	return c
}

// Rows returns the number of constraint rows m.
func (t *Tableau) Rows() int { return t.m }

// Vars returns the number of variables n.
func (t *Tableau) Vars() int { return t.n }

// At returns the cell at row i, column j, 0 ≤ i < m+2, 0 ≤ j ≤ n.
func (t *Tableau) At(i, j int) rational.Rat { return t.cells[i][j] }

// RHS returns the right-hand side of constraint row i.
func (t *Tableau) RHS(i int) rational.Rat { return t.cells[i][t.n] }

// Z returns the z_j entry of column j; Z(n) is the objective value.
func (t *Tableau) Z(j int) rational.Rat { return t.cells[t.m][j] }

// Reduced returns the z_j - c_j entry of column j.
func (t *Tableau) Reduced(j int) rational.Rat { return t.cells[t.m+1][j] }

// Objective returns the objective value of the current basic solution.
func (t *Tableau) Objective() rational.Rat { return t.cells[t.m][t.n] }
