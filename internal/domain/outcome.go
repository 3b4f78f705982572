package domain

import (
	"context"
	"errors"
)

// Outcome is the tagged result of a service operation. Every denial the
// services produce maps onto exactly one outcome.
type Outcome string

const (
	OutcomeSuccess         Outcome = "success"
	OutcomeNotFound        Outcome = "not_found"
	OutcomeForbidden       Outcome = "forbidden"
	OutcomeMismatch        Outcome = "mismatch"
	OutcomeUnauthenticated Outcome = "unauthenticated"
	OutcomeInvalid         Outcome = "invalid"
	OutcomeCanceled        Outcome = "canceled"
	OutcomeInternal        Outcome = "internal"
)

func (o Outcome) String() string { return string(o) }

// OutcomeOf classifies err. A nil error is a success; unknown errors are internal.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrProjectMismatch):
		return OutcomeMismatch
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrForbidden):
		return OutcomeForbidden
	case errors.Is(err, ErrUnauthorized):
		return OutcomeUnauthenticated
	case errors.Is(err, ErrValidation), errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return OutcomeInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeInternal
	}
}
