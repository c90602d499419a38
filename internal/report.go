package internal

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/mpyw/immutablecheck/internal/mutability"
	"github.com/mpyw/immutablecheck/internal/typeutil"
)

// Message formats the diagnostic for a target whose primary reason is not
// immutable. Types from pkg are printed unqualified.
//
//	Config is not immutable: field Config.items has mutable type []string
//	Box is not immutable: field Box.v has type parameter T
//	Handle is not immutable: type *int is mutable
//	Clock cannot be proven immutable: field Clock.buf has type bytes.Buffer from another package
func Message(pkg *types.Package, target *types.TypeName, reason mutability.Reason) string {
	q := qualifier(pkg)
	typ := typeutil.DisplayName(reason.Goal.Type().(types.Type), q)

	member, hasMember := lastMember(reason.Path)

	if reason.Verdict == mutability.Unknown {
		if !hasMember {
			return fmt.Sprintf("%s cannot be proven immutable: type %s is from another package", target.Name(), typ)
		}
		return fmt.Sprintf("%s cannot be proven immutable: %s has type %s from another package",
			target.Name(), member.Describe(q), typ)
	}

	if !hasMember {
		return fmt.Sprintf("%s is not immutable: type %s is mutable", target.Name(), typ)
	}

	if _, ok := types.Unalias(reason.Goal.Type().(types.Type)).(*types.TypeParam); ok {
		return fmt.Sprintf("%s is not immutable: %s has type parameter %s", target.Name(), member.Describe(q), typ)
	}

	return fmt.Sprintf("%s is not immutable: %s has mutable type %s", target.Name(), member.Describe(q), typ)
}

// Path renders a goal path as "Config -> Config.items -> []string".
// Consecutive goals on the same type collapse into one step.
func Path(pkg *types.Package, path []mutability.Goal) string {
	q := qualifier(pkg)

	var steps []string

	for _, g := range path {
		var step string
		if g.IsMember() {
			step = g.Member().(typeutil.Member).Name(q)
		} else {
			step = typeutil.DisplayName(g.Type().(types.Type), q)
		}

		if len(steps) > 0 && steps[len(steps)-1] == step {
			continue
		}
		steps = append(steps, step)
	}

	return strings.Join(steps, " -> ")
}

func lastMember(path []mutability.Goal) (typeutil.Member, bool) {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].IsMember() {
			return path[i].Member().(typeutil.Member), true
		}
	}

	return typeutil.Member{}, false
}

func qualifier(pkg *types.Package) types.Qualifier {
	return func(other *types.Package) string {
		if other == pkg {
			return ""
		}
		return other.Name()
	}
}
