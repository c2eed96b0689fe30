package simplex

import "q.log/dualsimplex/rational"

// Reporter receives the trace of a solve. Every value handed to a Reporter
// is a copy and may be retained.
type Reporter interface {
	// Start receives the initial tableau.
	Start(Snapshot)
	// Pivot receives each pivot decision and the tableau it produced.
	Pivot(PivotStep)
	// Finish receives the terminal outcome.
	Finish(Outcome)
}

// Snapshot is a read-only view of the tableau and basis at one point of a solve.
type Snapshot struct {
	Tableau *Tableau
	Basis   []int
	// C is the objective vector, used to label each row with c of its basic variable.
	C []rational.Rat
}

// Ratio is one candidate of the dual ratio test: (z_j - c_j) / a_rj.
type Ratio struct {
	Column int
	Value  rational.Rat
}

// PivotStep describes one iteration of the dual simplex.
type PivotStep struct {
	Iteration int
	Row       int
	RHS       rational.Rat
	Column    int
	Leaving   int
	Entering  int
	Element   rational.Rat

	Candidates []Ratio
	Ops        []RowOp
	After      Snapshot
}

// Status is the terminal state of a solve.
type Status int

const (
	Optimal Status = iota + 1
	Infeasible
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	}
	return "unknown"
}

// Assignment is the value of one basic variable.
type Assignment struct {
	Var   int
	Value rational.Rat
}

// Outcome is the terminal report of a solve. Solution and Objective are set
// when Status is Optimal, Row and Cause when it is Infeasible.
type Outcome struct {
	Status     Status
	Final      Snapshot
	Solution   []Assignment
	Objective  rational.Rat
	Row        int
	Cause      Cause
	Iterations int
}

type nopReporter struct{}

func (nopReporter) Start(Snapshot)  {}
func (nopReporter) Pivot(PivotStep) {}
func (nopReporter) Finish(Outcome)  {}
