// Package format regenerates source text from a parsed *ast.Package.
//
// The printer emits canonical layout: one definition per line, indented
// bodies at statement level, braced bodies inside expressions and the
// fewest parentheses the operator table allows. Printing and parsing
// again yields a tree equal to the original (ast.Equal). Comments are
// kept when they precede a top-level definition or close the file.
package format
