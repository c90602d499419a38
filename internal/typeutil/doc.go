// Package typeutil binds go/types to the mutability resolver.
//
// # Overview
//
// [Oracle] implements mutability.Oracle for the package under analysis.
// The package path plays the role of the assembly: members of named
// types from other packages are never enumerated, such types resolve to
// unknown unless exempted or recognized as built-in.
//
// # Categories
//
//	int, string, named basics, time.Time  -> builtin (immutable)
//	*T, []T, map, chan, func, interface   -> mutable
//	struct, [N]T                          -> struct (members expanded)
//	type parameters                       -> type parameter (mutable)
//
// Arrays are value types, so an array is expanded like a struct with a
// single element member:
//
//	[3][3]int -> element [3]int -> element int -> immutable
//
// # Identifiers
//
// Exemptions name types and members with stable identifiers:
//
//	TypeIdentifier(time.Location)     // "time.Location"
//	TypeIdentifier(*time.Location)    // "*time.Location"
//	TypeIdentifier(app.Box[int])      // "example.com/app.Box"
//	MemberIdentifier(Config.items)    // "example.com/app.Config.items"
//
// Every instantiation of a generic type shares the identifier of its
// declaration.
package typeutil
