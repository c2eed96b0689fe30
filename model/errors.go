package model

import "github.com/pkg/errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrBasisNotIdentity also matches ErrInvalidInput.
	ErrBasisNotIdentity = errors.Wrap(ErrInvalidInput, "basis columns do not form the identity")
)

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}
