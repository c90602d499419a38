package mutability

const (
	local   Assembly = "app"
	corlib  Assembly = "corlib"
	foreign Assembly = "vendor"
)

type fakeType struct {
	name     string
	assembly Assembly
	category Category
	base     *fakeType
	members  []*fakeMember
}

func (t *fakeType) String() string { return t.name }

type fakeMember struct {
	owner *fakeType
	name  string
	kind  MemberKind
	typ   *fakeType
}

func (m *fakeMember) String() string { return m.owner.name + "." + m.name }

func class(name string, base *fakeType) *fakeType {
	return &fakeType{name: name, assembly: local, category: CategoryClass, base: base}
}

func structType(name string) *fakeType {
	return &fakeType{name: name, assembly: local, category: CategoryStruct}
}

func (t *fakeType) with(kind MemberKind, name string, typ *fakeType) *fakeType {
	t.members = append(t.members, &fakeMember{owner: t, name: name, kind: kind, typ: typ})
	return t
}

func (t *fakeType) field(name string, typ *fakeType) *fakeType {
	return t.with(MemberField, name, typ)
}

func (t *fakeType) memberNamed(name string) *fakeMember {
	for _, m := range t.members {
		if m.name == name {
			return m
		}
	}
	panic("no member " + name)
}

var (
	object    = &fakeType{name: "object", assembly: corlib, category: CategoryBuiltin}
	intType   = &fakeType{name: "int", assembly: corlib, category: CategoryBuiltin}
	stringT   = &fakeType{name: "string", assembly: corlib, category: CategoryBuiltin}
	listType  = &fakeType{name: "List", assembly: corlib, category: CategoryMutable}
	typeParam = &fakeType{name: "T", assembly: local, category: CategoryTypeParameter}
)

// fakeOracle serves fakeTypes. When calls is non-nil it counts member
// enumerations per type name.
type fakeOracle struct {
	calls map[string]int
}

func (o *fakeOracle) Assembly() Assembly { return local }

func (o *fakeOracle) ContainingAssembly(t Type) Assembly { return t.(*fakeType).assembly }

func (o *fakeOracle) Category(t Type) Category { return t.(*fakeType).category }

func (o *fakeOracle) BaseType(t Type) Type {
	if base := t.(*fakeType).base; base != nil {
		return base
	}
	return nil
}

func (o *fakeOracle) ExplicitNonStaticMembers(t Type) []Member {
	ft := t.(*fakeType)
	if o.calls != nil {
		o.calls[ft.name]++
	}

	members := make([]Member, len(ft.members))
	for i, m := range ft.members {
		members[i] = m
	}
	return members
}

func (o *fakeOracle) MemberKind(m Member) MemberKind { return m.(*fakeMember).kind }

func (o *fakeOracle) DeclaredType(m Member) Type { return m.(*fakeMember).typ }

func (o *fakeOracle) TypeIdentifier(t Type) string { return t.(*fakeType).name }

func (o *fakeOracle) MemberIdentifier(m Member) string { return m.(*fakeMember).String() }
