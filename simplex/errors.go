package simplex

import (
	"fmt"

	"github.com/pkg/errors"
	"q.log/dualsimplex/model"
	"q.log/dualsimplex/rational"
)

var (
	// ErrInfeasible is matched by every *InfeasibleError.
	ErrInfeasible = errors.New("simplex: no feasible primal solution")

	ErrInvalidInput   = model.ErrInvalidInput
	ErrDivisionByZero = rational.ErrDivisionByZero
)

// Cause tells why the dual simplex stopped without a feasible basis.
type Cause int

const (
	// NoPivotColumn: every entry of the leaving row is non-negative.
	NoPivotColumn Cause = iota + 1
	// NoValidRatio: the ratio test found no column with a negative entry.
	NoValidRatio
)

func (c Cause) String() string {
	switch c {
	case NoPivotColumn:
		return "no_pivot_column"
	case NoValidRatio:
		return "no_valid_ratio"
	}
	return fmt.Sprintf("Cause(%d)", int(c))
}

// InfeasibleError reports the row that could not be pivoted on.
type InfeasibleError struct {
	Row   int
	Cause Cause
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("%v: %s in row R%d", ErrInfeasible, e.Cause, e.Row+1)
}

func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }
