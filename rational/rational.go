// Package rational provides an immutable exact fraction type used for every
// tableau cell. Values are kept in lowest terms with a positive denominator.
package rational

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Rat is an exact rational number. The zero value is 0.
// Operations return new values and never modify their operands.
type Rat struct {
	v *big.Rat
}

var zero = new(big.Rat)

func (a Rat) val() *big.Rat {
	if a.v == nil {
		return zero
	}
	return a.v
}

// New returns the integer n as a Rat.
func New(n int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(n)}
}

// NewFrac returns num/den reduced to lowest terms.
func NewFrac(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, errors.Wrapf(ErrDivisionByZero, "%d/0", num)
	}
	return Rat{v: new(big.Rat).SetFrac64(num, den)}, nil
}

// FromBig copies x. A nil x is 0.
func FromBig(x *big.Rat) Rat {
	if x == nil {
		return Rat{}
	}
	return Rat{v: new(big.Rat).Set(x)}
}

// Parse reads an integer, a fraction "p/q" or a decimal such as "0.25" or "1e-3".
func Parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		p, okp := new(big.Int).SetString(strings.TrimSpace(num), 10)
		q, okq := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !okp || !okq {
			return Rat{}, errors.Wrapf(ErrSyntax, "%q", s)
		}
		if q.Sign() == 0 {
			return Rat{}, errors.Wrapf(ErrDivisionByZero, "%q", s)
		}
		return Rat{v: new(big.Rat).SetFrac(p, q)}, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, errors.Wrapf(ErrSyntax, "%q", s)
	}
	return Rat{v: r}, nil
}

// FromFloat converts f through its shortest decimal representation, so 0.1
// becomes 1/10 rather than the binary fraction nearest to it.
func FromFloat(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, errors.Wrapf(ErrNotFinite, "%v", f)
	}
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

func (a Rat) Add(b Rat) Rat { return Rat{v: new(big.Rat).Add(a.val(), b.val())} }
func (a Rat) Sub(b Rat) Rat { return Rat{v: new(big.Rat).Sub(a.val(), b.val())} }
func (a Rat) Mul(b Rat) Rat { return Rat{v: new(big.Rat).Mul(a.val(), b.val())} }
func (a Rat) Neg() Rat      { return Rat{v: new(big.Rat).Neg(a.val())} }

// Div returns a/b, or ErrDivisionByZero when b is 0.
func (a Rat) Div(b Rat) (Rat, error) {
	if b.IsZero() {
		return Rat{}, errors.Wrapf(ErrDivisionByZero, "%s / 0", a)
	}
	return Rat{v: new(big.Rat).Quo(a.val(), b.val())}, nil
}

// Cmp returns -1, 0 or +1 depending on whether a < b, a == b or a > b.
func (a Rat) Cmp(b Rat) int { return a.val().Cmp(b.val()) }

func (a Rat) Sign() int        { return a.val().Sign() }
func (a Rat) IsZero() bool     { return a.Sign() == 0 }
func (a Rat) Equal(b Rat) bool { return a.Cmp(b) == 0 }
func (a Rat) Less(b Rat) bool  { return a.Cmp(b) < 0 }

// String formats a as "n" for integers and "n/d" otherwise.
func (a Rat) String() string { return a.val().RatString() }

// Float64 returns the nearest float64 value of a.
func (a Rat) Float64() float64 {
	f, _ := a.val().Float64()
	return f
}

// Big returns a copy of the underlying value.
func (a Rat) Big() *big.Rat { return new(big.Rat).Set(a.val()) }

// Sum adds up xs.
func Sum(xs ...Rat) Rat {
	s := new(big.Rat)
	for _, x := range xs {
		s.Add(s, x.val())
	}
	return Rat{v: s}
}
