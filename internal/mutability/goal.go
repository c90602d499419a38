package mutability

import "fmt"

// Kind is the variant tag of a [Goal].
type Kind uint8

const (
	KindInvalid Kind = iota
	KindType
	KindConcreteType
	KindClass
	KindStruct
	KindField
	KindProperty
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "Type"
	case KindConcreteType:
		return "ConcreteType"
	case KindClass:
		return "Class"
	case KindStruct:
		return "Struct"
	case KindField:
		return "Field"
	case KindProperty:
		return "Property"
	case KindEvent:
		return "Event"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Goal is a claim that a type or member value is immutable.
// Goals are plain comparable values; two goals for the same symbol and
// variant are the same goal.
type Goal struct {
	kind   Kind
	typ    Type
	member Member
}

// TypeGoal claims that t, whatever it concretely is, is immutable.
func TypeGoal(t Type) Goal { return Goal{kind: KindType, typ: t} }

// ConcreteTypeGoal claims that the declaration of t is immutable.
func ConcreteTypeGoal(t Type) Goal { return Goal{kind: KindConcreteType, typ: t} }

// ClassGoal claims that a class and its base chain are immutable.
func ClassGoal(t Type) Goal { return Goal{kind: KindClass, typ: t} }

// StructGoal claims that a struct's members are immutable.
func StructGoal(t Type) Goal { return Goal{kind: KindStruct, typ: t} }

// FieldGoal claims that a field's value is immutable.
func FieldGoal(m Member) Goal { return Goal{kind: KindField, member: m} }

// PropertyGoal claims that a property's backing value is immutable.
func PropertyGoal(m Member) Goal { return Goal{kind: KindProperty, member: m} }

// EventGoal claims that an event's delegate state is immutable.
func EventGoal(m Member) Goal { return Goal{kind: KindEvent, member: m} }

// Kind returns the variant tag.
func (g Goal) Kind() Kind { return g.kind }

// Type returns the type of a type-like goal, or nil for member goals.
func (g Goal) Type() Type { return g.typ }

// Member returns the member of a member goal, or nil for type-like goals.
func (g Goal) Member() Member { return g.member }

// IsMember reports whether g is a field, property or event goal.
func (g Goal) IsMember() bool {
	switch g.kind {
	case KindField, KindProperty, KindEvent:
		return true
	default:
		return false
	}
}

func (g Goal) String() string {
	if g.IsMember() {
		return fmt.Sprintf("%s(%v)", g.kind, g.member)
	}
	return fmt.Sprintf("%s(%v)", g.kind, g.typ)
}
