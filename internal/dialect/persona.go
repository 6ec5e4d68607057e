package dialect

import (
	"fmt"
	"strings"
)

// AlienKind groups hints by meaning; it selects the advice text only.
type AlienKind uint8

const (
	AlienUnknown AlienKind = iota
	AlienFunctionKeyword
	AlienBinding
	AlienShortDecl
	AlienMacroCall
	AlienReturnArrow
	AlienArrowFunction
	AlienBlockColon
	AlienElif
	AlienNone
	AlienSelf
	AlienImplTrait
	AlienStruct
	AlienDefer
	AlienUnsupported
)

// advice is what yapl writes instead, with a one-line example.
type advice struct {
	text    string
	example string
}

var adviceFor = map[AlienKind]advice{
	AlienFunctionKeyword: {"functions are declared with `fun`", "fun add(a: Int, b: Int): Int = a + b"},
	AlienBinding:         {"bindings use `val` (read-only) or `var` (mutable)", "val x = 1"},
	AlienShortDecl:       {"declare with `val` or `var` and assign with `=`", "val x = f()"},
	AlienMacroCall:       {"there are no macros; call the function directly", "println(x)"},
	AlienReturnArrow:     {"the result type follows the arguments after `:`", "fun f(): Int = 1"},
	AlienArrowFunction:   {"anonymous functions are written with `fun`", "fun(x: Int) = x * 2"},
	AlienBlockColon:      {"blocks are opened by indentation alone, without `:`", ""},
	AlienElif:            {"chain conditions with `else if`", "if a then x else if b then y else z"},
	AlienNone:            {"the absent value is `null`", "val x = null"},
	AlienSelf:            {"the receiver is `this`", "this.name"},
	AlienImplTrait:       {"behaviour is shared through `interface` and `implements`", "class A implements B"},
	AlienStruct:          {"data types are classes", "class Point"},
	AlienDefer:           {"there is no `defer`; release resources explicitly", ""},
	AlienUnsupported:     {"yapl has no equivalent construct", ""},
}

// persona is the voice of the messages for one dialect.
type persona struct {
	leadIn string
}

func personaFor(d Kind) persona {
	switch d {
	case Python:
		return persona{leadIn: "this looks like Python (%s)"}
	case Go:
		return persona{leadIn: "this looks like Go (%s)"}
	case Rust:
		return persona{leadIn: "this looks like Rust (%s)"}
	case TypeScript:
		return persona{leadIn: "this looks like TypeScript (%s)"}
	default:
		return persona{leadIn: "foreign syntax detected (%s)"}
	}
}

// Render builds the message and the advice note for h.
func Render(h Hint) (message, note string) {
	message = fmt.Sprintf(personaFor(h.Dialect).leadIn, h.Reason)
	a, ok := adviceFor[h.Alien]
	if !ok {
		return message, ""
	}
	note = "in yapl, " + a.text
	if ex := strings.TrimSpace(a.example); ex != "" {
		note += ", e.g. `" + ex + "`"
	}
	return message, note
}
