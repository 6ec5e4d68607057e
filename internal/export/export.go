// Package export derives the public surface of a parsed package.
package export

import (
	"slices"

	"yapl/internal/ast"
)

// Exports returns a new package holding the definitions of pkg marked
// export, with every function body stripped. Private members of exported
// classes and interfaces are left out, at any nesting depth. pkg is not
// modified.
func Exports(pkg *ast.Package) *ast.Package {
	out := &ast.Package{Name: pkg.Name}
	ast.Locate(out, pkg.Span(), nil)
	for _, item := range pkg.Body {
		def, ok := item.(ast.Definition)
		if !ok || !ast.HasModifier(def, "export") {
			continue
		}
		def = StripBodies(def)
		dropPrivate(def)
		out.Body = append(out.Body, def)
	}
	return out
}

// dropPrivate removes private members from def, which must be a copy.
func dropPrivate(def ast.Definition) {
	var members *[]ast.Definition
	switch d := def.(type) {
	case *ast.Class:
		members = &d.Members
	case *ast.Interface:
		members = &d.Members
	default:
		return
	}
	*members = slices.DeleteFunc(*members, func(m ast.Definition) bool {
		return ast.HasModifier(m, "private")
	})
	for _, m := range *members {
		dropPrivate(m)
	}
}

// Definitions lists the definitions of pkg in source order, skipping uses.
func Definitions(pkg *ast.Package) []ast.Definition {
	var defs []ast.Definition
	for _, item := range pkg.Body {
		if def, ok := item.(ast.Definition); ok {
			defs = append(defs, def)
		}
	}
	return defs
}
