package ripley

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("ripley: invalid input")

// InvalidInputError reports an argument the estimator cannot work with.
type InvalidInputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	msg := fmt.Sprintf("ripley: invalid %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrInvalidInput) hold.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func (e *InvalidInputError) Unwrap() error { return e.Err }

func invalid(field, reason string, err error) error {
	return &InvalidInputError{Field: field, Reason: reason, Err: err}
}
