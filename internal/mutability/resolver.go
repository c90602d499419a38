package mutability

import (
	"fmt"
	"log/slog"

	"github.com/mpyw/immutablecheck/internal/exemption"
)

// State is the resolution state of a goal within a query.
type State uint8

const (
	// StatePending goals are queued and not yet evaluated.
	StatePending State = iota
	// StateInProgress goals are expanded and waiting on subgoals.
	StateInProgress
	// StateExempt goals were terminated as immutable by an exemption.
	StateExempt
	StateTerminalImmutable
	StateTerminalMutable
	StateTerminalUnknown
	// StateCyclic goals belong to a cycle and were resolved together with
	// the rest of it.
	StateCyclic
	// StateResolved goals are composites whose subgoals all resolved.
	StateResolved
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateInProgress:
		return "in progress"
	case StateExempt:
		return "exempt"
	case StateTerminalImmutable:
		return "terminal immutable"
	case StateTerminalMutable:
		return "terminal mutable"
	case StateTerminalUnknown:
		return "terminal unknown"
	case StateCyclic:
		return "cyclic"
	case StateResolved:
		return "resolved"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Resolver decides whether types are immutable.
// A Resolver holds only read-only configuration; every call to Resolve
// owns its worklist and memo table, so one Resolver may serve concurrent
// queries as long as the oracle and exemptions are safe to share.
type Resolver struct {
	oracle     Oracle
	exemptions Exemptions
	logger     *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for debug tracing of queries.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a resolver. A nil exemptions value exempts nothing.
func New(oracle Oracle, exemptions Exemptions, opts ...Option) *Resolver {
	if exemptions == nil {
		exemptions = noExemptions{}
	}

	r := &Resolver{
		oracle:     oracle,
		exemptions: exemptions,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve proves or refutes that root is immutable.
// Internal-invariant failures are returned as errors matching
// [ErrInvariant]; every other outcome is a [Result].
func (r *Resolver) Resolve(root Type) (*Result, error) {
	q := &query{
		Resolver: r,
		memo:     make(map[Goal]int),
	}

	if err := q.run(TypeGoal(root)); err != nil {
		return nil, err
	}

	res := q.result()
	r.logger.Debug("resolved",
		slog.Any("root", root),
		slog.String("verdict", res.Verdict.String()),
		slog.Int("goals", res.Stats.Goals),
		slog.Int("cycles", res.Stats.Cycles),
	)

	return res, nil
}

// node is an arena entry for a goal seen in the current query.
type node struct {
	goal    Goal
	state   State
	verdict Verdict
	parent  int // discovering node, -1 for the root
	lowlink int // smallest arena index reachable through in-progress goals
	onStack bool
	cyclic  bool // reached again while in progress
}

// frame is an in-progress goal with its remaining subgoals.
type frame struct {
	node     int
	subgoals []Goal
	next     int
}

type query struct {
	*Resolver

	nodes   []node
	memo    map[Goal]int
	frames  []frame
	pending []int // goals whose verdict depends on an unfinished cycle
	reasons []int // terminal goals that are not immutable, in discovery order
	stats   Stats
}

func (q *query) run(root Goal) error {
	if _, err := q.visit(root, -1); err != nil {
		return err
	}

	for len(q.frames) > 0 {
		top := len(q.frames) - 1
		f := &q.frames[top]

		if f.next < len(f.subgoals) {
			g := f.subgoals[f.next]
			f.next++
			parent := f.node

			if child, seen := q.memo[g]; seen {
				q.revisit(parent, child)
				continue
			}

			child, err := q.visit(g, parent)
			if err != nil {
				return err
			}
			if q.nodes[child].state != StateInProgress {
				q.nodes[parent].verdict = q.nodes[parent].verdict.And(q.nodes[child].verdict)
			}
			continue
		}

		done := f.node
		q.frames = q.frames[:top]
		q.finish(done)

		if parent := q.nodes[done].parent; parent >= 0 {
			p, c := &q.nodes[parent], &q.nodes[done]
			p.lowlink = min(p.lowlink, c.lowlink)
			p.verdict = p.verdict.And(c.verdict)
		}
	}

	return nil
}

// visit creates the node for a goal seen for the first time and either
// resolves it immediately or pushes it for expansion.
func (q *query) visit(g Goal, parent int) (int, error) {
	idx := len(q.nodes)
	q.nodes = append(q.nodes, node{goal: g, parent: parent, lowlink: idx})
	q.memo[g] = idx
	q.stats.Goals++

	if q.exempt(g) {
		q.stats.Exempted++
		q.nodes[idx].state = StateExempt
		q.logger.Debug("goal exempted", slog.String("goal", g.String()))
		return idx, nil
	}

	exp, err := Apply(q.oracle, g)
	if err != nil {
		return idx, err
	}

	if exp.Terminal() {
		n := &q.nodes[idx]
		n.verdict = exp.Verdict
		switch exp.Verdict {
		case Immutable:
			n.state = StateTerminalImmutable
		case Unknown:
			n.state = StateTerminalUnknown
			q.reasons = append(q.reasons, idx)
		default:
			n.state = StateTerminalMutable
			q.reasons = append(q.reasons, idx)
		}
		return idx, nil
	}

	q.stats.Expanded++
	q.nodes[idx].state = StateInProgress
	q.nodes[idx].onStack = true
	q.pending = append(q.pending, idx)
	q.frames = append(q.frames, frame{node: idx, subgoals: exp.Subgoals})

	return idx, nil
}

// revisit handles an edge to a goal that already has a node.
func (q *query) revisit(parent, child int) {
	p, c := &q.nodes[parent], &q.nodes[child]

	if !c.onStack {
		// Fully resolved: memoized verdict.
		p.verdict = p.verdict.And(c.verdict)
		return
	}

	p.lowlink = min(p.lowlink, child)

	if c.state == StateInProgress {
		// A cycle back to a goal on the current path contributes nothing
		// beyond what the rest of the cycle proves.
		c.cyclic = true
		q.stats.Cycles++
		q.logger.Debug("cycle detected",
			slog.String("from", p.goal.String()),
			slog.String("to", c.goal.String()),
		)
		return
	}

	// Finished, but part of a cycle still being resolved.
	p.verdict = p.verdict.And(c.verdict)
}

// finish closes an expanded goal. When the goal is the entry point of a
// cycle, every goal of the cycle receives the conjunction of all their
// verdicts.
func (q *query) finish(idx int) {
	n := &q.nodes[idx]
	if n.lowlink != idx {
		// Provisional until the cycle entry finishes.
		n.state = StateResolved
		return
	}

	start := len(q.pending) - 1
	for q.pending[start] != idx {
		start--
	}
	members := q.pending[start:]
	q.pending = q.pending[:start]

	verdict := Immutable
	cyclic := len(members) > 1
	for _, m := range members {
		verdict = verdict.And(q.nodes[m].verdict)
		cyclic = cyclic || q.nodes[m].cyclic
	}

	state := StateResolved
	if cyclic {
		state = StateCyclic
	}

	for _, m := range members {
		q.nodes[m].verdict = verdict
		q.nodes[m].state = state
		q.nodes[m].onStack = false
	}
}

func (q *query) exempt(g Goal) bool {
	if g.IsMember() {
		return q.exemptions.IsExempt(exemption.KindMember, q.oracle.MemberIdentifier(g.member))
	}
	return q.exemptions.IsExempt(exemption.KindType, q.oracle.TypeIdentifier(g.typ))
}

func (q *query) path(idx int) []Goal {
	var rev []Goal
	for i := idx; i >= 0; i = q.nodes[i].parent {
		rev = append(rev, q.nodes[i].goal)
	}

	path := make([]Goal, len(rev))
	for i, g := range rev {
		path[len(rev)-1-i] = g
	}

	return path
}

func (q *query) result() *Result {
	res := &Result{
		Verdict: q.nodes[0].verdict,
		Stats:   q.stats,
		states:  make(map[Goal]State, len(q.nodes)),
	}

	for _, idx := range q.reasons {
		n := q.nodes[idx]
		res.Reasons = append(res.Reasons, Reason{
			Goal:    n.goal,
			Verdict: n.verdict,
			Path:    q.path(idx),
		})
	}

	for _, n := range q.nodes {
		res.states[n.goal] = n.state
	}

	return res
}
