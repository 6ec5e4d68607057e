package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"yapl/internal/ast"
	"yapl/internal/source"
)

// CheckSpanInvariants runs the span invariants on a parsed file:
// 1) the package span starts at 0 and ends at the end of sf
// 2) every node span is valid, belongs to sf and lies inside its parent
// 3) siblings do not overlap and appear in source order
func CheckSpanInvariants(pkg *ast.Package, sf *source.File) error {
	if pkg == nil || sf == nil {
		return errors.New("nil package or file")
	}

	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	sp := pkg.Span()
	if sp.File() != sf {
		return fmt.Errorf("package span points to %v, want %s", sp.File(), sf.Path)
	}
	if sp.Start.Off != 0 || sp.End.Off != size {
		return fmt.Errorf("package span %d..%d does not cover the file (%d bytes)", sp.Start.Off, sp.End.Off, size)
	}
	return checkChildren(pkg, sf)
}

func checkChildren(parent ast.Node, sf *source.File) error {
	var prev ast.Node
	for _, child := range ast.Children(parent) {
		sp := child.Span()
		if !sp.IsValid() {
			return fmt.Errorf("%s inside %s has no span", child.Kind(), parent.Kind())
		}
		if sp.File() != sf {
			return fmt.Errorf("%s span belongs to another file", child.Kind())
		}
		if !parent.Span().Contains(sp) {
			return fmt.Errorf("%s %s is not inside %s %s", child.Kind(), sp, parent.Kind(), parent.Span())
		}
		if prev != nil && prev.Span().End.Off > sp.Start.Off {
			return fmt.Errorf("%s %s overlaps %s %s", child.Kind(), sp, prev.Kind(), prev.Span())
		}
		if err := checkChildren(child, sf); err != nil {
			return err
		}
		prev = child
	}
	return nil
}
