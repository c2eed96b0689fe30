package instance

import (
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"q.log/dualsimplex/model"
	"q.log/dualsimplex/rational"
)

// Reader reads a free MPS file to construct a model
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// Read returns the model of maximize c·x, Ax = b, x ≥ 0 stored in the file,
// with c taken from the objective row. basis uses 0-based variable indices.
func (r *Reader) Read(basis []int) (*model.Model, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "instance: read %s", r.filename)
	}

	m := model.NewModel(lp.NumRows(), lp.NumCols())

	//populate obj function
	cVec := make([]rational.Rat, 0, lp.NumCols())
	for c := 1; c <= lp.NumCols(); c++ {
		if lp.ColLB(c) != 0 || lp.ColUB(c) != math.MaxFloat64 {
			return nil, errors.Wrapf(ErrNotEqualityForm, "column %d bounds [%g, %g]", c, lp.ColLB(c), lp.ColUB(c))
		}
		v, err := rational.FromFloat(lp.ObjCoef(c))
		if err != nil {
			return nil, errors.Wrapf(err, "objective column %d", c)
		}
		cVec = append(cVec, v)
	}
	if err := m.SetC(cVec); err != nil {
		return nil, err
	}

	//populate constraints
	aVec := make([]rational.Rat, 0, lp.NumRows()*lp.NumCols())
	bVec := make([]rational.Rat, 0, lp.NumRows())
	for i := 1; i <= lp.NumRows(); i++ {
		if lp.RowLB(i) != lp.RowUB(i) {
			return nil, errors.Wrapf(ErrNotEqualityForm, "row %d bounds [%g, %g]", i, lp.RowLB(i), lp.RowUB(i))
		}
		rowVec := make([]rational.Rat, lp.NumCols())
		idxs, row := lp.MatRow(i)
		for k, v := range idxs {
			if v == 0 {
				continue
			}
			x, err := rational.FromFloat(row[k])
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %d", i, v)
			}
			rowVec[v-1] = x
		}
		rhs, err := rational.FromFloat(lp.RowLB(i))
		if err != nil {
			return nil, errors.Wrapf(err, "rhs of row %d", i)
		}
		aVec = append(aVec, rowVec...)
		bVec = append(bVec, rhs)
	}

	if err := m.SetA(aVec); err != nil {
		return nil, err
	}
	if err := m.SetB(bVec); err != nil {
		return nil, err
	}
	if err := m.SetBasis(basis); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseBasis parses a comma separated list of 1-based variable numbers,
// as printed in the trace ("1,2,5" or "x1,x2,x5"), into 0-based indices.
func ParseBasis(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.Wrap(ErrBadBasis, "empty")
	}
	parts := strings.Split(s, ",")
	basis := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimPrefix(strings.TrimSpace(p), "x")
		k, err := strconv.Atoi(p)
		if err != nil || k < 1 {
			return nil, errors.Wrapf(ErrBadBasis, "%q", p)
		}
		basis = append(basis, k-1)
	}
	return basis, nil
}
