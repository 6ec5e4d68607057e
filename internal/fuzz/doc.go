// Package fuzztests houses Go fuzz harnesses for the yapl front end
// (source -> lexer -> parser -> printer). They guard against panics, hangs
// and span corruption on arbitrary inputs, and check that printing a parsed
// file and parsing it again gives the same tree.
package fuzztests
