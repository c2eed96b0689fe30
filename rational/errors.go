package rational

import "github.com/pkg/errors"

var (
	ErrDivisionByZero = errors.New("rational: division by zero")
	ErrSyntax         = errors.New("rational: invalid syntax")
	ErrNotFinite      = errors.New("rational: value is not finite")
)
