// Package checkout turns cart contents plus validated shipping and payment
// input into persisted order records through a strictly sequential pipeline.
package checkout

// State is the checkout session stage. Transitions only move forward:
// Reviewing -> AwaitingSubmit -> Submitting -> Succeeded | Failed.
type State int

const (
	StateReviewing State = iota
	StateAwaitingSubmit
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReviewing:
		return "reviewing"
	case StateAwaitingSubmit:
		return "awaiting_submit"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}
