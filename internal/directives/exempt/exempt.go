// Package exempt handles //immutablecheck:exempt directives.
//
// On a type declaration the directive exempts the type; on a struct field
// it exempts that field of the declared type:
//
//	//immutablecheck:exempt
//	type Registry struct{ ... }
//
//	type Config struct {
//		cache *lru.Cache //immutablecheck:exempt
//	}
package exempt

import (
	"go/ast"
	"go/types"

	"github.com/mpyw/immutablecheck/internal/directives"
	"github.com/mpyw/immutablecheck/internal/exemption"
	"github.com/mpyw/immutablecheck/internal/typeutil"
)

// Name is the directive name.
const Name = "exempt"

// Collect returns the exemptions declared by directives on decls.
func Collect(decls []directives.TypeDecl) []exemption.Exemption {
	var exemptions []exemption.Exemption

	for _, d := range decls {
		if d.Has(Name) {
			exemptions = append(exemptions, exemption.New(exemption.KindType, typeutil.TypeIdentifier(d.Obj.Type())))
		}

		exemptions = append(exemptions, fields(d)...)
	}

	return exemptions
}

func fields(d directives.TypeDecl) []exemption.Exemption {
	st, ok := d.Spec.Type.(*ast.StructType)
	if !ok || d.Obj.IsAlias() {
		return nil
	}

	typ, ok := d.Obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	var exemptions []exemption.Exemption

	// Each ast.Field declares one types.Var per name, or one if embedded.
	i := 0
	for _, f := range st.Fields.List {
		n := max(1, len(f.Names))

		if directives.Has(Name, f.Doc, f.Comment) {
			for j := i; j < i+n && j < typ.NumFields(); j++ {
				m := typeutil.Member{Owner: d.Obj.Type(), Obj: typ.Field(j)}
				exemptions = append(exemptions, exemption.New(exemption.KindMember, typeutil.MemberIdentifier(m)))
			}
		}

		i += n
	}

	return exemptions
}
