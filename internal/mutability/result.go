package mutability

// Result is the outcome of a query.
type Result struct {
	Verdict Verdict
	// Reasons lists every terminal goal that was not immutable, in
	// discovery order. It is empty when Verdict is Immutable.
	Reasons []Reason
	Stats   Stats

	states map[Goal]State
}

// Reason is a terminal goal that contributed a non-immutable verdict.
type Reason struct {
	Goal    Goal
	Verdict Verdict
	// Path is the chain of goals from the root to Goal, both included.
	Path []Goal
}

// Stats counts the work done by a query.
type Stats struct {
	Goals    int // distinct goals seen
	Expanded int // goals expanded into subgoals
	Exempted int // goals terminated by an exemption
	Cycles   int // edges back to an in-progress goal
}

// State returns the final state of g, or false if the query never reached it.
func (r *Result) State(g Goal) (State, bool) {
	s, ok := r.states[g]
	return s, ok
}

// Primary returns the first reason matching the overall verdict.
func (r *Result) Primary() (Reason, bool) {
	for _, reason := range r.Reasons {
		if reason.Verdict == r.Verdict {
			return reason, true
		}
	}
	return Reason{}, false
}
