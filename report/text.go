package report

import (
	"fmt"
	"io"
	"strings"

	"q.log/dualsimplex/model"
	"q.log/dualsimplex/rational"
	"q.log/dualsimplex/simplex"
)

const colWidth = 12

// Text writes a human-readable trace of a solve to w.
type Text struct {
	w io.Writer
}

func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) Start(s simplex.Snapshot) {
	fmt.Fprintln(t.w, "Initial Tableau:")
	t.tableau(s)
}

func (t *Text) Pivot(p simplex.PivotStep) {
	fmt.Fprintf(t.w, "Iteration %d:\n", p.Iteration)
	fmt.Fprintf(t.w, "Pivot row selected: R%d (RHS = %s)\n", p.Row+1, p.RHS)
	fmt.Fprintf(t.w, "Pivot column selected: %s\n", model.VarName(p.Column))
	fmt.Fprintf(t.w, "Leaving variable: %s replaced by entering variable: %s\n",
		model.VarName(p.Leaving), model.VarName(p.Entering))
	fmt.Fprintln(t.w, "Row operations performed:")
	for _, op := range p.Ops {
		fmt.Fprintf(t.w, "  %s\n", FormatRowOp(op))
	}
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, "Updated Tableau:")
	t.tableau(p.After)
}

func (t *Text) Finish(o simplex.Outcome) {
	switch o.Status {
	case simplex.Optimal:
		fmt.Fprintln(t.w, "Final Tableau (Feasible solution reached):")
		t.tableau(o.Final)
		fmt.Fprintln(t.w, "Basic solution:")
		for _, a := range o.Solution {
			fmt.Fprintf(t.w, "  %s = %s\n", model.VarName(a.Var), a.Value)
		}
		fmt.Fprintf(t.w, "Final objective value: %s\n", o.Objective)
	case simplex.Infeasible:
		fmt.Fprintf(t.w, "Iteration %d:\n", o.Iterations+1)
		fmt.Fprintf(t.w, "Pivot row selected: R%d (RHS = %s)\n", o.Row+1, o.Final.Tableau.RHS(o.Row))
		switch o.Cause {
		case simplex.NoPivotColumn:
			fmt.Fprintln(t.w, "No feasible solution exists: all entries in the pivot row are non-negative.")
		default:
			fmt.Fprintln(t.w, "No feasible solution exists: No pivot column found (all entries are non-negative in the pivot row).")
		}
	}
}

// FormatRowOp renders op in the R-notation used by the trace, e.g.
// "R3 / (-7) -> R3" or "R1 - (-1)*R3 -> R1".
func FormatRowOp(op simplex.RowOp) string {
	if op.Scale {
		return fmt.Sprintf("R%d / (%s) -> R%d", op.Target+1, op.Factor, op.Target+1)
	}
	return fmt.Sprintf("R%d - (%s)*R%d -> R%d", op.Target+1, op.Factor, op.Source+1, op.Target+1)
}

func (t *Text) tableau(s simplex.Snapshot) {
	tab := s.Tableau
	m, n := tab.Rows(), tab.Vars()

	header := []string{"C_B", "Basis"}
	for j := range n {
		header = append(header, model.VarName(j))
	}
	header = append(header, "x_B")
	fmt.Fprintln(t.w, row(header))
	fmt.Fprintln(t.w, strings.Repeat("-", colWidth*len(header)))

	for i := range m {
		v := s.Basis[i]
		t.line(s.C[v].String(), model.VarName(v), func(j int) rational.Rat { return tab.At(i, j) }, n)
	}
	t.line("", "z_j", tab.Z, n)
	t.line("", "z_j-c_j", tab.Reduced, n)
	fmt.Fprintln(t.w)
}

func (t *Text) line(cb, label string, cell func(int) rational.Rat, n int) {
	entries := []string{cb, label}
	for j := range n + 1 {
		entries = append(entries, cell(j).String())
	}
	fmt.Fprintln(t.w, row(entries))
}

func row(entries []string) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%-*s", colWidth, e)
	}
	return strings.TrimRight(b.String(), " ")
}
