// Package verify cross-checks exact dual simplex results against gonum's
// floating-point primal simplex.
package verify

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/optimize/convex/lp"
	"q.log/dualsimplex/model"
	"q.log/dualsimplex/simplex"
)

var (
	ErrMismatch = errors.New("verify: objective mismatch")

	// ErrNotCertified is returned for results whose final reduced costs are
	// not all non-negative; such a basis is feasible but not proven optimal.
	ErrNotCertified = errors.New("verify: result is not dual feasible")
)

// DefaultTolerance is the absolute objective difference Check accepts.
const DefaultTolerance = 1e-9

// Check solves maximize c·x, Ax = b, x ≥ 0 in floating point and compares its
// optimum with res.Objective. It returns the float optimum.
func Check(p *model.Model, res *simplex.Result, tol float64) (float64, error) {
	if !res.DualFeasible {
		return math.NaN(), ErrNotCertified
	}
	b, c := p.Floats()
	for j := range c {
		c[j] = -c[j]
	}
	opt, _, err := lp.Simplex(c, p.Dense(), b, 0, nil)
	if err != nil {
		return math.NaN(), errors.Wrap(err, "verify: gonum simplex")
	}
	opt = -opt
	if want := res.Objective.Float64(); math.Abs(opt-want) > tol {
		return opt, errors.Wrapf(ErrMismatch, "exact %s (%g), float %g", res.Objective, want, opt)
	}
	return opt, nil
}
