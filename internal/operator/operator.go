// Package operator holds the static operator table shared by the lexer and
// the parser. A lower priority number binds tighter.
package operator

import (
	"sort"
	"sync"
)

// Fixity tells where an operator stands relative to its operands.
type Fixity uint8

const (
	// Prefix operators precede their operand: -x.
	Prefix Fixity = iota
	// Suffix operators follow their operand: x++.
	Suffix
	// Binary operators sit between two operands.
	Binary
)

func (f Fixity) String() string {
	switch f {
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	case Binary:
		return "binary"
	default:
		return "fixity(?)"
	}
}

// Assoc is the associativity of a binary operator.
type Assoc uint8

const (
	// Left groups a-b-c as (a-b)-c.
	Left Assoc = iota
	// Right groups a=b=c as a=(b=c).
	Right
)

// Operator describes one entry of the table.
type Operator struct {
	Symbol   string
	Alias    string // alphabetic spelling, "" if none
	Name     string // display name
	Priority int
	Fixity   Fixity
	Assoc    Assoc
}

// Precedence levels.
const (
	PrecSuffix         = 1  // x++ x--
	PrecPrefix         = 2  // ++x --x +x -x !x ~x
	PrecMultiplicative = 3  // * / % **
	PrecAdditive       = 4  // + -
	PrecShift          = 5  // << >>
	PrecRelational     = 6  // < <= > >=
	PrecEquality       = 7  // == !=
	PrecBitAnd         = 8  // &
	PrecBitXor         = 9  // ^
	PrecBitOr          = 10 // |
	PrecLogicalAnd     = 11 // &&
	PrecLogicalOr      = 12 // ||
	PrecTernary        = 13 // ? :
	PrecAssignment     = 14 // = += ...

	// Loosest is a ceiling accepting every binary operator.
	Loosest = 128
)

var table = []*Operator{
	{Symbol: "++", Name: "Postfix increment", Priority: PrecSuffix, Fixity: Suffix},
	{Symbol: "--", Name: "Postfix decrement", Priority: PrecSuffix, Fixity: Suffix},

	{Symbol: "++", Name: "Prefix increment", Priority: PrecPrefix, Fixity: Prefix},
	{Symbol: "--", Name: "Prefix decrement", Priority: PrecPrefix, Fixity: Prefix},
	{Symbol: "+", Name: "Unary plus", Priority: PrecPrefix, Fixity: Prefix},
	{Symbol: "-", Name: "Unary minus", Priority: PrecPrefix, Fixity: Prefix},
	{Symbol: "!", Alias: "not", Name: "Logical NOT", Priority: PrecPrefix, Fixity: Prefix},
	{Symbol: "~", Name: "Bitwise NOT", Priority: PrecPrefix, Fixity: Prefix},

	{Symbol: "*", Name: "Multiplication", Priority: PrecMultiplicative, Fixity: Binary},
	{Symbol: "/", Name: "Division", Priority: PrecMultiplicative, Fixity: Binary},
	{Symbol: "%", Name: "Remainder", Priority: PrecMultiplicative, Fixity: Binary},
	{Symbol: "**", Name: "Exponentiation", Priority: PrecMultiplicative, Fixity: Binary, Assoc: Right},

	{Symbol: "+", Name: "Addition", Priority: PrecAdditive, Fixity: Binary},
	{Symbol: "-", Name: "Subtraction", Priority: PrecAdditive, Fixity: Binary},

	{Symbol: "<<", Name: "Left shift", Priority: PrecShift, Fixity: Binary},
	{Symbol: ">>", Name: "Right shift", Priority: PrecShift, Fixity: Binary},

	{Symbol: "<", Name: "Less than", Priority: PrecRelational, Fixity: Binary},
	{Symbol: "<=", Name: "Less than or equal", Priority: PrecRelational, Fixity: Binary},
	{Symbol: ">", Name: "Greater than", Priority: PrecRelational, Fixity: Binary},
	{Symbol: ">=", Name: "Greater than or equal", Priority: PrecRelational, Fixity: Binary},

	{Symbol: "==", Name: "Equality", Priority: PrecEquality, Fixity: Binary},
	{Symbol: "!=", Name: "Inequality", Priority: PrecEquality, Fixity: Binary},

	{Symbol: "&", Name: "Bitwise AND", Priority: PrecBitAnd, Fixity: Binary},
	{Symbol: "^", Name: "Bitwise XOR", Priority: PrecBitXor, Fixity: Binary},
	{Symbol: "|", Name: "Bitwise OR", Priority: PrecBitOr, Fixity: Binary},

	{Symbol: "&&", Alias: "and", Name: "Logical AND", Priority: PrecLogicalAnd, Fixity: Binary},
	{Symbol: "||", Alias: "or", Name: "Logical OR", Priority: PrecLogicalOr, Fixity: Binary},

	{Symbol: "?", Name: "Ternary then", Priority: PrecTernary, Fixity: Binary, Assoc: Right},
	{Symbol: ":", Name: "Ternary else", Priority: PrecTernary, Fixity: Binary, Assoc: Right},

	{Symbol: "=", Name: "Assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "*=", Name: "Multiplication assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "/=", Name: "Division assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "%=", Name: "Remainder assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "**=", Name: "Exponentiation assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "+=", Name: "Addition assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "-=", Name: "Subtraction assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "<<=", Name: "Left shift assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: ">>=", Name: "Right shift assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "&=", Name: "Bitwise AND assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "^=", Name: "Bitwise XOR assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "|=", Name: "Bitwise OR assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "&&=", Name: "Logical AND assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
	{Symbol: "||=", Name: "Logical OR assignment", Priority: PrecAssignment, Fixity: Binary, Assoc: Right},
}

type key struct {
	spelling string
	fixity   Fixity
}

var (
	indexOnce sync.Once
	index     map[key]*Operator
	symbols   []string
	aliases   map[string]string
)

func buildIndex() {
	index = make(map[key]*Operator, len(table)*2)
	aliases = make(map[string]string)
	seen := make(map[string]bool)
	for _, op := range table {
		index[key{op.Symbol, op.Fixity}] = op
		if op.Alias != "" {
			index[key{op.Alias, op.Fixity}] = op
			aliases[op.Alias] = op.Symbol
		}
		if !seen[op.Symbol] {
			seen[op.Symbol] = true
			symbols = append(symbols, op.Symbol)
		}
	}
	sort.Strings(symbols)
}

// Lookup resolves a symbol or alias for the given fixity.
// The index is built on first use and shared afterwards.
func Lookup(spelling string, fixity Fixity) (*Operator, bool) {
	indexOnce.Do(buildIndex)
	op, ok := index[key{spelling, fixity}]
	return op, ok
}

// Symbols returns the distinct operator symbols in lexical order.
// The caller must not modify the result.
func Symbols() []string {
	indexOnce.Do(buildIndex)
	return symbols
}

// IsAlias reports whether word is an alphabetic operator spelling.
func IsAlias(word string) bool {
	indexOnce.Do(buildIndex)
	_, ok := aliases[word]
	return ok
}

// All returns every table entry in declaration order.
func All() []*Operator {
	out := make([]*Operator, len(table))
	copy(out, table)
	return out
}

func (op *Operator) String() string {
	if op.Alias != "" {
		return op.Symbol + " (" + op.Alias + ")"
	}
	return op.Symbol
}

// RightCeiling is the priority ceiling used for the right operand of op.
// Left-associative operators only let tighter operators into their right
// operand, right-associative ones also accept their own level.
func (op *Operator) RightCeiling() int {
	if op.Assoc == Right {
		return op.Priority
	}
	return op.Priority - 1
}
