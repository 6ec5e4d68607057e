package diagfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"yapl/internal/ast"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Span     SpanJSON        `json:"span"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

type field struct {
	key   string
	value any
}

// nodeFields returns the scalar payload of n; child nodes are not included.
func nodeFields(n ast.Node) []field {
	switch n := n.(type) {
	case *ast.Package:
		if n.Name != "" {
			return []field{{"name", n.Name}}
		}
	case *ast.Use:
		if n.Alias != "" {
			return []field{{"path", n.Path}, {"alias", n.Alias}}
		}
		return []field{{"path", n.Path}}
	case *ast.UseAll:
		return []field{{"path", n.Path}}
	case *ast.Identifier:
		return []field{{"name", n.Name}}
	case *ast.TypeName:
		return []field{{"name", n.Name}}
	case *ast.Modifier:
		return []field{{"value", n.Value}}
	case *ast.Number:
		return []field{{"value", n.Value}}
	case *ast.String:
		return []field{{"quote", string(n.Quote)}, {"value", n.Value}}
	case *ast.PrefixUnary:
		return []field{{"op", n.Op.Symbol}}
	case *ast.SuffixUnary:
		return []field{{"op", n.Op.Symbol}}
	case *ast.Binary:
		return []field{{"op", n.Op.Symbol}}
	case *ast.Call:
		if n.Parens {
			return []field{{"parens", true}}
		}
	}
	return nil
}

func nodeLabel(n ast.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Kind().String())
	for _, f := range nodeFields(n) {
		switch v := f.value.(type) {
		case string:
			fmt.Fprintf(&sb, " %s=%q", f.key, v)
		default:
			fmt.Fprintf(&sb, " %s=%v", f.key, v)
		}
	}
	sp := n.Span()
	if sp.IsValid() {
		start, end := sp.Start.LineCol(), sp.End.LineCol()
		fmt.Fprintf(&sb, " (%d:%d-%d:%d)", start.Line, start.Col, end.Line, end.Col)
	}
	return sb.String()
}

// FormatASTTree writes pkg as an indented tree, one node per line:
//
//	Package name="demo" (1:1-3:1)
//	└─ Val (2:1-2:10)
//	   ├─ Identifier name="x" (2:5-2:6)
//	   └─ Number value="1" (2:9-2:10)
func FormatASTTree(w io.Writer, pkg *ast.Package) error {
	if pkg == nil {
		return errors.New("nil package")
	}
	var sb strings.Builder
	sb.WriteString(nodeLabel(pkg))
	sb.WriteByte('\n')
	formatChildren(&sb, pkg, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func formatChildren(sb *strings.Builder, n ast.Node, prefix string) {
	children := ast.Children(n)
	for i, c := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(nodeLabel(c))
		sb.WriteByte('\n')
		formatChildren(sb, c, prefix+next)
	}
}

// BuildASTOutput converts n and its descendants into the JSON document shape.
func BuildASTOutput(n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{
		Type: n.Kind().String(),
		Span: makeSpan(n.Span()),
	}
	if fields := nodeFields(n); len(fields) > 0 {
		out.Fields = make(map[string]any, len(fields))
		for _, f := range fields {
			out.Fields[f.key] = f.value
		}
	}
	for _, c := range ast.Children(n) {
		out.Children = append(out.Children, BuildASTOutput(c))
	}
	return out
}

// FormatASTJSON writes pkg as an indented JSON document.
func FormatASTJSON(w io.Writer, pkg *ast.Package) error {
	if pkg == nil {
		return errors.New("nil package")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTOutput(pkg))
}
