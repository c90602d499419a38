package mutability

import (
	"fmt"

	"github.com/mpyw/immutablecheck/internal/exemption"
)

// Type is an opaque handle to a type known to an [Oracle].
// Handles are compared with == and used as map keys, so their dynamic
// values must be comparable (typically pointers).
type Type any

// Member is an opaque handle to a member of a type. The same
// comparability requirement as [Type] applies.
type Member any

// Assembly identifies the unit of compilation a type belongs to.
type Assembly string

// Category classifies a type for the concrete type rule.
type Category int

const (
	CategoryInvalid Category = iota
	// CategoryBuiltin is a recognized built-in immutable type.
	CategoryBuiltin
	// CategoryMutable is a type known to permit mutation (references, containers).
	CategoryMutable
	// CategoryTypeParameter is an open generic parameter.
	CategoryTypeParameter
	// CategoryClass is a type with a base chain.
	CategoryClass
	// CategoryStruct is a type without a base chain.
	CategoryStruct
)

func (c Category) String() string {
	switch c {
	case CategoryBuiltin:
		return "builtin"
	case CategoryMutable:
		return "mutable"
	case CategoryTypeParameter:
		return "type parameter"
	case CategoryClass:
		return "class"
	case CategoryStruct:
		return "struct"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// MemberKind is the kind of an explicitly declared member.
type MemberKind int

const (
	MemberInvalid MemberKind = iota
	MemberField
	MemberProperty
	MemberEvent
	MemberMethod
	MemberNestedType
)

func (k MemberKind) String() string {
	switch k {
	case MemberField:
		return "field"
	case MemberProperty:
		return "property"
	case MemberEvent:
		return "event"
	case MemberMethod:
		return "method"
	case MemberNestedType:
		return "nested type"
	default:
		return fmt.Sprintf("MemberKind(%d)", int(k))
	}
}

// Oracle is the read-only semantic model the rules consult.
// Implementations must be safe for concurrent use.
type Oracle interface {
	// Assembly returns the assembly under analysis.
	Assembly() Assembly
	// ContainingAssembly returns the assembly that declares t.
	ContainingAssembly(t Type) Assembly
	// Category classifies t.
	Category(t Type) Category
	// BaseType returns the base type of a class. Nil means the class has
	// no base and the chain ends there, as for the root object type.
	BaseType(t Type) Type
	// ExplicitNonStaticMembers returns the declared instance members of t
	// in a stable order.
	ExplicitNonStaticMembers(t Type) []Member
	// MemberKind returns the kind of m.
	MemberKind(m Member) MemberKind
	// DeclaredType returns the static type of a field, property or event.
	DeclaredType(m Member) Type
	// TypeIdentifier returns the stable identifier used for exemptions.
	TypeIdentifier(t Type) string
	// MemberIdentifier returns the stable identifier used for exemptions.
	MemberIdentifier(m Member) string
}

// Exemptions is the exemption registry consulted before any rule.
type Exemptions interface {
	IsExempt(kind exemption.Kind, identifier string) bool
}

type noExemptions struct{}

func (noExemptions) IsExempt(exemption.Kind, string) bool { return false }
