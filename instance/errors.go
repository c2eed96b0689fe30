package instance

import "github.com/pkg/errors"

var (
	// ErrNotEqualityForm is returned for MPS rows that are not equalities or
	// columns whose bounds are not [0, +inf).
	ErrNotEqualityForm = errors.New("instance: model is not in equality form")

	ErrBadBasis = errors.New("instance: invalid basis list")
)
