package typeutil

import (
	"go/types"

	"github.com/mpyw/immutablecheck/internal/mutability"
)

// Oracle answers structural questions about Go types for the resolver.
// The assembly under analysis is the package being checked.
//
// Go has no inheritance, properties, events or nested type members, so
// the oracle only reports struct categories, field and method members,
// and never a base type. Arrays are value types and are reported as
// structs with a single element member.
type Oracle struct {
	pkg *types.Package
}

var _ mutability.Oracle = (*Oracle)(nil)

// NewOracle returns an oracle for the package under analysis.
func NewOracle(pkg *types.Package) *Oracle {
	return &Oracle{pkg: pkg}
}

// Assembly returns the path of the package under analysis.
func (o *Oracle) Assembly() mutability.Assembly {
	return mutability.Assembly(o.pkg.Path())
}

// ContainingAssembly returns the package of a named type or type
// parameter. Unnamed types are structural and belong to the package
// under analysis.
func (o *Oracle) ContainingAssembly(t mutability.Type) mutability.Assembly {
	var obj types.Object

	switch t := types.Unalias(asType(t)).(type) {
	case *types.Named:
		obj = t.Obj()
	case *types.TypeParam:
		obj = t.Obj()
	default:
		return o.Assembly()
	}

	if obj.Pkg() == nil {
		// Universe scope (error, comparable).
		return ""
	}

	return mutability.Assembly(obj.Pkg().Path())
}

// Category classifies a Go type.
func (o *Oracle) Category(t mutability.Type) mutability.Category {
	typ := types.Unalias(asType(t))

	if IsBuiltinImmutable(typ) {
		return mutability.CategoryBuiltin
	}

	if _, ok := typ.(*types.TypeParam); ok {
		return mutability.CategoryTypeParameter
	}

	switch typ.Underlying().(type) {
	case *types.Struct, *types.Array:
		return mutability.CategoryStruct
	case *types.Basic, *types.Pointer, *types.Slice, *types.Map,
		*types.Chan, *types.Signature, *types.Interface:
		// Basic here is unsafe.Pointer or an invalid type.
		return mutability.CategoryMutable
	default:
		return mutability.CategoryInvalid
	}
}

// BaseType always returns nil: Go types have no base chain.
func (o *Oracle) BaseType(mutability.Type) mutability.Type {
	return nil
}

// ExplicitNonStaticMembers returns the fields declared directly in the
// struct (embedded fields included, promoted ones not), or the element of
// an array, followed by the methods declared on the named type.
func (o *Oracle) ExplicitNonStaticMembers(t mutability.Type) []mutability.Member {
	typ := types.Unalias(asType(t))

	var members []mutability.Member

	switch u := typ.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			members = append(members, Member{Owner: typ, Obj: u.Field(i)})
		}
	case *types.Array:
		members = append(members, Member{Owner: typ})
	}

	if named, ok := typ.(*types.Named); ok {
		for i := range named.NumMethods() {
			members = append(members, Member{Owner: typ, Obj: named.Method(i)})
		}
	}

	return members
}

// MemberKind maps a member to its kind.
func (o *Oracle) MemberKind(m mutability.Member) mutability.MemberKind {
	member := asMember(m)
	if member.IsElement() {
		return mutability.MemberField
	}

	switch obj := member.Obj.(type) {
	case *types.Var:
		if obj.IsField() {
			return mutability.MemberField
		}
	case *types.Func:
		return mutability.MemberMethod
	case *types.TypeName:
		return mutability.MemberNestedType
	}

	return mutability.MemberInvalid
}

// DeclaredType returns the static type of a field or array element.
func (o *Oracle) DeclaredType(m mutability.Member) mutability.Type {
	member := asMember(m)
	if member.IsElement() {
		arr, _ := types.Unalias(member.Owner).Underlying().(*types.Array)
		return arr.Elem()
	}

	return member.Obj.Type()
}

// TypeIdentifier returns [TypeIdentifier] of t.
func (o *Oracle) TypeIdentifier(t mutability.Type) string {
	return TypeIdentifier(asType(t))
}

// MemberIdentifier returns [MemberIdentifier] of m.
func (o *Oracle) MemberIdentifier(m mutability.Member) string {
	return MemberIdentifier(asMember(m))
}

func asType(t mutability.Type) types.Type {
	return t.(types.Type)
}

func asMember(m mutability.Member) Member {
	return m.(Member)
}
