// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token in the grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	EOF     Kind = iota // end of input
	Illegal             // unrecognized input
	String              // quoted string, undecoded
	Int                 // unsigned decimal integer
	Bool                // constant: true or false
	Comma               // comma ","
	Colon               // colon ":"
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
)

var kindStr = [...]string{
	EOF:     "end of input",
	Illegal: "illegal token",
	String:  "string",
	Int:     "integer",
	Bool:    "boolean",
	Comma:   `","`,
	Colon:   `":"`,
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Illegal]
	}
	return kindStr[v]
}

// A Token is a single lexical unit. Only the payload field matching Kind is
// meaningful: Text for String, Int for Int, and Bool for Bool.
type Token struct {
	Kind Kind
	Text string
	Int  int32
	Bool bool
}

var (
	tokEOF     = Token{Kind: EOF}
	tokIllegal = Token{Kind: Illegal}
)

func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("string %q", t.Text)
	case Int:
		return "integer " + strconv.FormatInt(int64(t.Int), 10)
	case Bool:
		return "boolean " + strconv.FormatBool(t.Bool)
	default:
		return t.Kind.String()
	}
}
