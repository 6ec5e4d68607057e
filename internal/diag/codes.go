package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnknownOperator    Code = 1002
	LexInconsistentIndent Code = 1003
	LexUnterminatedString Code = 1004

	// Syntax
	SynInfo                 Code = 2000
	SynExpectToken          Code = 2001
	SynExpectExpression     Code = 2002
	SynExpectCondition      Code = 2003
	SynExpectType           Code = 2004
	SynExpectName           Code = 2005
	SynExpectDefinition     Code = 2006
	SynExpectStatement      Code = 2007
	SynUnexpectedToken      Code = 2008
	SynMultipleSuperclasses Code = 2009
	SynForeignSyntax        Code = 2010
	SynInternal             Code = 2999

	// I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown error",
	LexInfo:                 "Lexical information",
	LexUnknownChar:          "Unexpected character",
	LexUnknownOperator:      "Unknown operator",
	LexInconsistentIndent:   "Inconsistent indentation",
	LexUnterminatedString:   "Unterminated string",
	SynInfo:                 "Syntax information",
	SynExpectToken:          "Expected token",
	SynExpectExpression:     "Expression expected",
	SynExpectCondition:      "Condition expected",
	SynExpectType:           "Type expected",
	SynExpectName:           "Name expected",
	SynExpectDefinition:     "Definition expected",
	SynExpectStatement:      "Statement expected",
	SynUnexpectedToken:      "Unexpected token",
	SynMultipleSuperclasses: "Multiple superclasses",
	SynForeignSyntax:        "Syntax of another language",
	SynInternal:             "Internal parser error",
	IOLoadFileError:         "I/O load file error",
	IOCacheError:            "Cache error",
}

// ID returns the stable identifier such as LEX1001 or SYN2003.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	if title, ok := codeDescription[c]; ok {
		return title
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
