// Package ast defines the syntax tree produced by the parser.
//
// The node set is closed: every node type lives in this package and
// implements Node through an embedded Base. Nodes own their children (no
// sharing, no cycles) and every node span covers the spans of its children.
// Consumers traverse the tree with a Visitor (one method per node type,
// dispatched on Kind) or with Inspect. They must treat spans as read-only
// and build new trees instead of mutating the parser's output.
package ast
