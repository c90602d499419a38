// Package immutable handles //immutablecheck:immutable directives.
package immutable

import (
	"go/ast"
	"go/types"

	"github.com/mpyw/immutablecheck/internal/directives"
)

// Name is the directive name.
const Name = "immutable"

// Target is a type declaration that must be proven immutable.
type Target struct {
	Name *ast.Ident
	Obj  *types.TypeName
}

// Collect returns the declarations marked with //immutablecheck:immutable,
// in the order given.
func Collect(decls []directives.TypeDecl) []Target {
	var targets []Target

	for _, d := range decls {
		if d.Has(Name) {
			targets = append(targets, Target{Name: d.Spec.Name, Obj: d.Obj})
		}
	}

	return targets
}
