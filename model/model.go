package model

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"q.log/dualsimplex/rational"
)

// Model is a linear program in equality form
//
//	maximize c·x  s.t.  A x = b, x ≥ 0
//
// together with the initial basis the dual simplex starts from.
type Model struct {
	//A constraints matrix, NumRows x NumCols
	A [][]rational.Rat

	//B constraints rhs
	B []rational.Rat

	//C objective function coefficients
	C []rational.Rat

	//Basis holds, for each row, the index of the variable basic in it
	Basis []int

	NumRows int
	NumCols int
}

func NewModel(numRows, numCols int) *Model {
	a := make([][]rational.Rat, numRows)
	for r := range a {
		a[r] = make([]rational.Rat, numCols)
	}
	return &Model{
		A:       a,
		B:       make([]rational.Rat, numRows),
		C:       make([]rational.Rat, numCols),
		Basis:   make([]int, numRows),
		NumRows: numRows,
		NumCols: numCols,
	}
}

// New copies a, b, c and basis into a validated Model.
func New(a [][]rational.Rat, b, c []rational.Rat, basis []int) (*Model, error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return nil, invalid("empty constraint matrix")
	}
	m := NewModel(len(a), len(a[0]))
	for r, row := range a {
		if len(row) != m.NumCols {
			return nil, invalid("row %d has %d entries, want %d", r, len(row), m.NumCols)
		}
		copy(m.A[r], row)
	}
	if err := m.SetB(b); err != nil {
		return nil, err
	}
	if err := m.SetC(c); err != nil {
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

// FromInts builds a Model from integer data.
func FromInts(a [][]int64, b, c []int64, basis []int) (*Model, error) {
	ra := make([][]rational.Rat, len(a))
	for r, row := range a {
		ra[r] = ints(row)
	}
	return New(ra, ints(b), ints(c), basis)
}

// FromFloats builds a Model from float data, converting every entry through
// its shortest decimal representation.
func FromFloats(a [][]float64, b, c []float64, basis []int) (*Model, error) {
	var err error
	ra := make([][]rational.Rat, len(a))
	for r, row := range a {
		if ra[r], err = floats(row); err != nil {
			return nil, errors.Wrapf(err, "A row %d", r)
		}
	}
	rb, err := floats(b)
	if err != nil {
		return nil, errors.Wrap(err, "b")
	}
	rc, err := floats(c)
	if err != nil {
		return nil, errors.Wrap(err, "c")
	}
	return New(ra, rb, rc, basis)
}

// FromDense builds a Model from a gonum matrix.
func FromDense(a *mat.Dense, b, c []float64, basis []int) (*Model, error) {
	if a == nil || a.IsEmpty() {
		return nil, invalid("empty constraint matrix")
	}
	r, _ := a.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, a)
	}
	return FromFloats(rows, b, c, basis)
}

func (m *Model) SetA(aVec []rational.Rat) error {
	if len(aVec) != m.NumCols*m.NumRows {
		return invalid("A has %d entries, want %d", len(aVec), m.NumCols*m.NumRows)
	}
	for r := range m.NumRows {
		copy(m.A[r], aVec[r*m.NumCols:(r+1)*m.NumCols])
	}
	return nil
}

func (m *Model) SetB(bVec []rational.Rat) error {
	if len(bVec) != m.NumRows {
		return invalid("b has %d entries, want %d", len(bVec), m.NumRows)
	}
	copy(m.B, bVec)
	return nil
}

func (m *Model) SetC(cVec []rational.Rat) error {
	if len(cVec) != m.NumCols {
		return invalid("c has %d entries, want %d", len(cVec), m.NumCols)
	}
	copy(m.C, cVec)
	return nil
}

func (m *Model) SetBasis(basis []int) error {
	if len(basis) != m.NumRows {
		return invalid("basis has %d entries, want %d", len(basis), m.NumRows)
	}
	copy(m.Basis, basis)
	return nil
}

// Validate checks the shape of the model and that the basis columns of A
// form the identity matrix, row i holding the 1 of column Basis[i].
func (m *Model) Validate() error {
	if m.NumRows == 0 || m.NumCols == 0 {
		return invalid("empty problem %dx%d", m.NumRows, m.NumCols)
	}
	if len(m.A) != m.NumRows || len(m.B) != m.NumRows || len(m.Basis) != m.NumRows {
		return invalid("row count mismatch: A=%d b=%d basis=%d, want %d",
			len(m.A), len(m.B), len(m.Basis), m.NumRows)
	}
	if len(m.C) != m.NumCols {
		return invalid("c has %d entries, want %d", len(m.C), m.NumCols)
	}
	for r, row := range m.A {
		if len(row) != m.NumCols {
			return invalid("row %d has %d entries, want %d", r, len(row), m.NumCols)
		}
	}

	seen := make(map[int]int, m.NumRows)
	for r, j := range m.Basis {
		if j < 0 || j >= m.NumCols {
			return invalid("basis[%d] = %d out of range [0,%d)", r, j, m.NumCols)
		}
		if prev, ok := seen[j]; ok {
			return invalid("variable %s is basic in rows %d and %d", VarName(j), prev, r)
		}
		seen[j] = r
	}

	one := rational.New(1)
	for r, j := range m.Basis {
		for i := range m.NumRows {
			want := rational.Rat{}
			if i == r {
				want = one
			}
			if !m.A[i][j].Equal(want) {
				return errors.Wrapf(ErrBasisNotIdentity, "A[%d][%d] = %s, want %s",
					i, j, m.A[i][j], want)
			}
		}
	}
	return nil
}

// Dense returns A as a float64 gonum matrix.
func (m *Model) Dense() *mat.Dense {
	d := mat.NewDense(m.NumRows, m.NumCols, nil)
	for r, row := range m.A {
		for c, v := range row {
			d.Set(r, c, v.Float64())
		}
	}
	return d
}

// Floats returns float64 approximations of b and c.
func (m *Model) Floats() (b, c []float64) {
	b = make([]float64, m.NumRows)
	for i, v := range m.B {
		b[i] = v.Float64()
	}
	c = make([]float64, m.NumCols)
	for j, v := range m.C {
		c[j] = v.Float64()
	}
	return b, c
}

// VarName is the display label of variable j: x1, x2, ...
func VarName(j int) string {
	return fmt.Sprintf("x%d", j+1)
}

func ints(v []int64) []rational.Rat {
	out := make([]rational.Rat, len(v))
	for i, x := range v {
		out[i] = rational.New(x)
	}
	return out
}

func floats(v []float64) ([]rational.Rat, error) {
	out := make([]rational.Rat, len(v))
	for i, x := range v {
		r, err := rational.FromFloat(x)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		out[i] = r
	}
	return out, nil
}
