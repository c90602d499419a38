package mutability

import "fmt"

// Verdict is the outcome of resolving a goal.
// Verdicts are ordered so that the conjunction of two verdicts is the
// larger one.
type Verdict int

const (
	Immutable Verdict = iota
	// Unknown means a type outside the assembly under analysis was reached
	// and nothing proved it immutable. Consumers decide the policy.
	Unknown
	Mutable
)

// And returns the conjunction of v and w: Mutable dominates Unknown,
// which dominates Immutable.
func (v Verdict) And(w Verdict) Verdict {
	return max(v, w)
}

func (v Verdict) String() string {
	switch v {
	case Immutable:
		return "immutable"
	case Unknown:
		return "unknown"
	case Mutable:
		return "mutable"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}
