package typeutil

import (
	"go/types"
)

// Member is a member handle of a Go type: a struct field, a method, or
// the element of an array (Obj == nil).
type Member struct {
	Owner types.Type
	Obj   types.Object
}

// IsElement reports whether m is the element of an array.
func (m Member) IsElement() bool {
	return m.Obj == nil
}

// Name returns a short display name such as "Config.items" or
// "[4]*int element". Generic owners are shown without type arguments.
func (m Member) Name(q types.Qualifier) string {
	owner := DisplayName(m.Owner, q)
	if m.IsElement() {
		return owner + " element"
	}

	return owner + "." + m.Obj.Name()
}

// Describe returns a display name with the member kind,
// such as "field Config.items" or "element of [4]*int".
func (m Member) Describe(q types.Qualifier) string {
	if m.IsElement() {
		return "element of " + DisplayName(m.Owner, q)
	}

	switch m.Obj.(type) {
	case *types.Func:
		return "method " + m.Name(q)
	default:
		return "field " + m.Name(q)
	}
}

func (m Member) String() string {
	return MemberIdentifier(m)
}

// DisplayName formats t for diagnostics. Aliases are resolved and named
// types are shown by their declared name ("Box", not "Box[T any]").
func DisplayName(t types.Type, q types.Qualifier) string {
	t = types.Unalias(t)

	named, ok := t.(*types.Named)
	if !ok {
		return types.TypeString(t, q)
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}

	if q == nil {
		return obj.Pkg().Path() + "." + obj.Name()
	}

	if prefix := q(obj.Pkg()); prefix != "" {
		return prefix + "." + obj.Name()
	}

	return obj.Name()
}
