package mutability

// Expansion is the result of applying a rule to a goal.
// A goal with no subgoals is terminal and resolves to Verdict.
type Expansion struct {
	Subgoals []Goal
	Verdict  Verdict
}

// Terminal reports whether the expansion has no subgoals.
func (e Expansion) Terminal() bool {
	return len(e.Subgoals) == 0
}

func terminal(v Verdict) Expansion {
	return Expansion{Verdict: v}
}

func expand(subgoals []Goal) Expansion {
	if len(subgoals) == 0 {
		return terminal(Immutable)
	}
	return Expansion{Subgoals: subgoals}
}

// Apply expands g into the subgoals required to prove it.
// It never decides composite verdicts; it only reports terminal facts.
func Apply(o Oracle, g Goal) (Expansion, error) {
	switch g.kind {
	case KindType:
		return applyType(o, g), nil
	case KindConcreteType:
		return applyConcreteType(o, g)
	case KindClass:
		return applyClass(o, g)
	case KindStruct:
		return applyStruct(o, g)
	case KindField, KindProperty, KindEvent:
		return expand([]Goal{TypeGoal(o.DeclaredType(g.member))}), nil
	default:
		return Expansion{}, invariant(g, ErrUnmodeledGoal, "kind %s", g.kind)
	}
}

func applyType(o Oracle, g Goal) Expansion {
	// Any instantiation may be mutable.
	if o.Category(g.typ) == CategoryTypeParameter {
		return terminal(Mutable)
	}
	return expand([]Goal{ConcreteTypeGoal(g.typ)})
}

func applyConcreteType(o Oracle, g Goal) (Expansion, error) {
	category := o.Category(g.typ)

	switch category {
	case CategoryBuiltin:
		return terminal(Immutable), nil
	case CategoryMutable:
		return terminal(Mutable), nil
	}

	if o.ContainingAssembly(g.typ) != o.Assembly() {
		return terminal(Unknown), nil
	}

	switch category {
	case CategoryClass:
		return expand([]Goal{ClassGoal(g.typ)}), nil
	case CategoryStruct:
		return expand([]Goal{StructGoal(g.typ)}), nil
	case CategoryTypeParameter:
		// Type parameters are handled by the type rule; a concrete goal
		// for one means a rule produced it incorrectly.
		return Expansion{}, invariant(g, ErrUnmodeledCategory, "concrete goal for type parameter")
	default:
		return Expansion{}, invariant(g, ErrUnmodeledCategory, "category %s", category)
	}
}

func applyClass(o Oracle, g Goal) (Expansion, error) {
	if err := checkAssembly(o, g); err != nil {
		return Expansion{}, err
	}

	var subgoals []Goal
	if base := o.BaseType(g.typ); base != nil {
		subgoals = append(subgoals, ConcreteTypeGoal(base))
	}

	members, err := memberGoals(o, g)
	if err != nil {
		return Expansion{}, err
	}

	return expand(append(subgoals, members...)), nil
}

func applyStruct(o Oracle, g Goal) (Expansion, error) {
	if err := checkAssembly(o, g); err != nil {
		return Expansion{}, err
	}

	members, err := memberGoals(o, g)
	if err != nil {
		return Expansion{}, err
	}

	return expand(members), nil
}

// checkAssembly guards member enumeration: class and struct goals are
// only produced for types of the assembly under analysis, and members of
// other assemblies cannot be enumerated reliably.
func checkAssembly(o Oracle, g Goal) error {
	if got, want := o.ContainingAssembly(g.typ), o.Assembly(); got != want {
		return invariant(g, ErrAssemblyBoundary, "type in %q, analyzing %q", got, want)
	}
	return nil
}

func memberGoals(o Oracle, g Goal) ([]Goal, error) {
	var goals []Goal

	for _, m := range o.ExplicitNonStaticMembers(g.typ) {
		subgoal, ok, err := memberToGoal(o, g, m)
		if err != nil {
			return nil, err
		}
		if ok {
			goals = append(goals, subgoal)
		}
	}

	return goals, nil
}

func memberToGoal(o Oracle, owner Goal, m Member) (Goal, bool, error) {
	switch kind := o.MemberKind(m); kind {
	case MemberField:
		return FieldGoal(m), true, nil
	case MemberProperty:
		return PropertyGoal(m), true, nil
	case MemberEvent:
		return EventGoal(m), true, nil
	case MemberMethod:
		// Methods hold no state, even when they mutate someone else's.
		return Goal{}, false, nil
	case MemberNestedType:
		// Reached through a member's own type if anything holds it.
		return Goal{}, false, nil
	default:
		return Goal{}, false, invariant(owner, ErrUnmodeledMember, "member %v has kind %s", m, kind)
	}
}
