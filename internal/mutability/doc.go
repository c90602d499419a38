// Package mutability decides whether every value reachable through a type
// is immutable.
//
// # Goals and Rules
//
// A query starts from a [TypeGoal] for the root type. [Apply] expands a
// goal into the subgoals needed to prove it:
//
//	TypeGoal(T)         -> ConcreteTypeGoal(T)             (type parameter: mutable)
//	ConcreteTypeGoal(T) -> ClassGoal(T) | StructGoal(T)    (builtin, known mutable, foreign: terminal)
//	ClassGoal(T)        -> ConcreteTypeGoal(base), member goals...
//	StructGoal(T)       -> member goals...
//	FieldGoal(m)        -> TypeGoal(type of m)
//
// Rules never compute composite verdicts. They consult an [Oracle] and
// report either subgoals or a terminal verdict.
//
// # Resolution
//
// [Resolver.Resolve] walks the goal graph with an explicit stack. Before a
// goal is expanded the [Exemptions] registry is consulted; an exempt goal
// is immutable and its subgraph is never visited. A composite goal is
// immutable iff all of its subgoals are:
//
//	Immutable AND Unknown = Unknown
//	Unknown   AND Mutable = Mutable
//
// Goals are memoized for the duration of a query, so each distinct goal
// is expanded once.
//
// # Cycles
//
// A subgoal that is already in progress on the current path closes a
// cycle. Cycles are resolved optimistically: the back edge contributes
// nothing, and every goal of the strongly connected component receives
// the conjunction of the verdicts of the whole component once its entry
// goal finishes. A self-referential type is therefore immutable unless
// some other part of the cycle is not.
//
// # Failures
//
// Verdicts are values. Broken contracts (enumerating members of a type in
// another assembly, a member kind the rules do not model) are returned as
// [*InvariantError] and abort the query.
package mutability
