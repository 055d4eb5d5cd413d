package checkout

import (
	"errors"
	"fmt"
)

// ErrEmptyCart means a session was requested for a cart with no items.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrNotAuthenticated means a session was requested without a signed-in user.
var ErrNotAuthenticated = errors.New("checkout: user is not authenticated")

// ErrAlreadySubmitted means Submit was called on a session that already ran.
var ErrAlreadySubmitted = errors.New("checkout: session already submitted")

// ValidationError means required checkout input is missing or invalid. It is
// raised before any collaborator call is made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout validation: missing required field %q", e.Field)
}

// CollaboratorError wraps a failed pipeline step. The remaining steps are
// aborted and the cart is left intact so the customer can retry.
type CollaboratorError struct {
	Step string
	Err  error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("checkout step %s failed: %v", e.Step, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
