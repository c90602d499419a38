package typeutil

import (
	"go/types"
)

// knownImmutable lists standard library value types that hold no shared
// mutable state despite being structs from another package.
var knownImmutable = map[string]bool{
	"time.Time":          true,
	"net/netip.Addr":     true,
	"net/netip.AddrPort": true,
	"net/netip.Prefix":   true,
}

// IsBuiltinImmutable reports whether t is immutable by construction:
// basic types (except unsafe.Pointer), named types over them, and the
// standard library value types listed in knownImmutable.
func IsBuiltinImmutable(t types.Type) bool {
	t = types.Unalias(t)

	if b, ok := t.Underlying().(*types.Basic); ok {
		return b.Kind() != types.UnsafePointer && b.Kind() != types.Invalid
	}

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	return knownImmutable[TypeIdentifier(named)]
}

// TypeIdentifier returns the exemption identifier of t.
// Named types are identified by their declaration ("example.com/app.Box"
// for every instantiation of Box); other types by their type string
// ("*time.Location", "[]byte").
func TypeIdentifier(t types.Type) string {
	t = types.Unalias(t)

	if named, ok := t.(*types.Named); ok {
		return objectPath(named.Obj())
	}

	return types.TypeString(t, nil)
}

// MemberIdentifier returns the exemption identifier of a member:
// the owner's identifier followed by the member name.
func MemberIdentifier(m Member) string {
	if m.Obj == nil {
		return TypeIdentifier(m.Owner) + ".[]"
	}

	return TypeIdentifier(m.Owner) + "." + m.Obj.Name()
}

func objectPath(obj types.Object) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}
