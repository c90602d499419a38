package mutability

import (
	"errors"
	"fmt"
)

// ErrInvariant is matched by every internal-invariant failure.
// Such failures indicate a broken contract between the rules and the
// oracle; they abort the query and are never reported as a verdict.
var ErrInvariant = errors.New("mutability: internal invariant violated")

// Specific invariant failures, matched together with ErrInvariant.
var (
	ErrAssemblyBoundary  = errors.New("members of a type from another assembly cannot be enumerated")
	ErrUnmodeledMember   = errors.New("unmodeled member kind")
	ErrUnmodeledCategory = errors.New("unmodeled type category")
	ErrUnmodeledGoal     = errors.New("unmodeled goal kind")
)

// InvariantError is returned when a rule cannot be applied to a goal.
type InvariantError struct {
	Goal   Goal
	Err    error
	Detail string
}

func (e *InvariantError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: %v: %v", ErrInvariant, e.Goal, e.Err)
	}
	return fmt.Sprintf("%v: %v: %v (%s)", ErrInvariant, e.Goal, e.Err, e.Detail)
}

// Unwrap allows errors.Is to match both ErrInvariant and the specific cause.
func (e *InvariantError) Unwrap() []error {
	return []error{ErrInvariant, e.Err}
}

func invariant(g Goal, err error, format string, args ...any) *InvariantError {
	return &InvariantError{Goal: g, Err: err, Detail: fmt.Sprintf(format, args...)}
}
