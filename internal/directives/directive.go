// Package directives recognizes //immutablecheck: comment directives.
package directives

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// Prefix starts every directive.
const Prefix = "immutablecheck:"

// Parse splits a "//immutablecheck:<name> [args]" comment.
// A space after "//" is tolerated.
func Parse(text string) (name, args string, ok bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, Prefix)
	if !ok {
		return "", "", false
	}

	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		name, args = rest[:i], strings.TrimSpace(rest[i+1:])
	} else {
		name = rest
	}

	return name, args, name != ""
}

// Has reports whether any of the comment groups carries the named directive.
func Has(name string, groups ...*ast.CommentGroup) bool {
	for _, cg := range groups {
		if cg == nil {
			continue
		}
		for _, c := range cg.List {
			if got, _, ok := Parse(c.Text); ok && got == name {
				return true
			}
		}
	}

	return false
}

// TypeDecl is a package-level type declaration.
type TypeDecl struct {
	Spec *ast.TypeSpec
	Obj  *types.TypeName
	// Docs holds the spec doc, the declaration doc for unparenthesized
	// declarations, and the trailing line comment.
	Docs []*ast.CommentGroup
}

// Has reports whether the declaration carries the named directive.
func (d TypeDecl) Has(name string) bool {
	return Has(name, d.Docs...)
}

// TypeDecls returns the package-level type declarations of the pass in
// source order. Files in skipFiles are ignored.
func TypeDecls(pass *analysis.Pass, insp *inspector.Inspector, skipFiles map[string]bool) []TypeDecl {
	var decls []TypeDecl

	insp.WithStack([]ast.Node{(*ast.GenDecl)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		// Only [File, GenDecl]: local type declarations are not checked.
		if len(stack) != 2 {
			return false
		}

		gd := n.(*ast.GenDecl)
		if gd.Tok != token.TYPE {
			return false
		}

		if skipFiles[pass.Fset.Position(gd.Pos()).Filename] {
			return false
		}

		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			obj, ok := pass.TypesInfo.Defs[ts.Name].(*types.TypeName)
			if !ok {
				continue
			}

			docs := []*ast.CommentGroup{ts.Doc, ts.Comment}
			if !gd.Lparen.IsValid() {
				docs = append(docs, gd.Doc)
			}

			decls = append(decls, TypeDecl{Spec: ts, Obj: obj, Docs: docs})
		}

		return false
	})

	return decls
}
