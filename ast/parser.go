// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/jparse"
)

// ParseOptions control the behavior of a Parser. A nil *ParseOptions is
// ready for use and provides default values as described.
type ParseOptions struct {
	// AllowComments, if true, treats block (/* ... */) and line (// ...)
	// comments in the input as whitespace.
	AllowComments bool

	// MaxDepth, if positive, is the maximum nesting depth of objects and arrays
	// permitted in the input. Deeper input is reported as a parse error.
	//
	// By default nesting depth is unlimited. The parser is recursive, so stack
	// usage grows in proportion to the nesting depth of the input; callers
	// parsing untrusted input should set a limit.
	MaxDepth int

	// RequireEOF, if true, reports a parse error if any tokens follow the first
	// complete value. By default, trailing input is ignored.
	RequireEOF bool
}

func (o *ParseOptions) allowComments() bool { return o != nil && o.AllowComments }

func (o *ParseOptions) maxDepth() int {
	if o == nil || o.MaxDepth < 0 {
		return 0
	}
	return o.MaxDepth
}

func (o *ParseOptions) requireEOF() bool { return o != nil && o.RequireEOF }

// Parse reads all the data from r and parses a single value from it, using
// default options.
func Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return newParser(jparse.NewScannerBytes(data), nil).Parse()
}

// ParseString parses a single value from src, using default options.
func ParseString(src string) (Value, error) { return NewParser(src, nil).Parse() }

// A Parser constructs value trees from source text by recursive descent over
// the tokens reported by a jparse.Scanner. A Parser is not safe for concurrent
// use, but separate parsers may share the same source.
type Parser struct {
	s        *jparse.Scanner
	maxDepth int
	eof      bool // require end of input after a value
	depth    int  // current nesting depth
}

// NewParser constructs a parser that consumes input from src.
// If opts == nil, default options are used.
func NewParser(src string, opts *ParseOptions) *Parser {
	return newParser(jparse.NewScanner(src), opts)
}

func newParser(s *jparse.Scanner, opts *ParseOptions) *Parser {
	s.AllowComments(opts.allowComments())
	return &Parser{s: s, maxDepth: opts.maxDepth(), eof: opts.requireEOF()}
}

// Parse parses and returns the next value from the input. In case of error,
// no value is returned, and the error has concrete type *ParseError.
//
// A close bracket "]" where the value should begin is reported as an error
// of kind ErrArrayEnd; all other problems have kind ErrParsing.
func (p *Parser) Parse() (_ Value, err error) {
	defer recoverParseError(&err)

	p.depth = 0
	tok := p.s.Next()
	if tok.Kind == jparse.RSquare {
		p.syntaxError(ErrArrayEnd, nil, "unexpected %v", tok)
	}
	v := p.parseElement(tok)
	if p.eof {
		if next := p.s.Next(); next.Kind != jparse.EOF {
			p.unexpected(next, "end of input")
		}
	}
	return v, nil
}

// parseElement consumes a single value of any type beginning with tok.
func (p *Parser) parseElement(tok jparse.Token) Value {
	switch tok.Kind {
	case jparse.LBrace:
		p.enter()
		defer p.leave()
		return p.parseMembers()
	case jparse.LSquare:
		p.enter()
		defer p.leave()
		return p.parseElements()
	case jparse.String:
		return String(tok.Text)
	case jparse.Int:
		return Number(tok.Int)
	case jparse.Bool:
		return Bool(tok.Bool)
	default:
		p.unexpected(tok, "value")
		panic("unreachable")
	}
}

// parseMembers consumes zero or more key:value object members.
// Precondition: the previous token was "{".
// Postcondition: the previous token was "}".
//
// Separating commas are optional, and any number of commas may appear before,
// between, or after members. A duplicate key replaces any earlier value.
func (p *Parser) parseMembers() Object {
	obj := make(Object)
	for {
		var key string
		switch tok := p.s.Next(); tok.Kind {
		case jparse.RBrace:
			return obj // end of object
		case jparse.Comma:
			continue
		case jparse.String:
			key = tok.Text
		case jparse.Int:
			key = strconv.FormatInt(int64(tok.Int), 10)
		default:
			p.unexpected(tok, `key or "}"`)
		}

		if tok := p.s.Next(); tok.Kind != jparse.Colon {
			p.unexpected(tok, `":"`)
		}
		obj[key] = p.parseElement(p.s.Next())
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: the previous token was "[".
// Postcondition: the previous token was "]".
//
// A single trailing comma before the close bracket is permitted.
func (p *Parser) parseElements() Array {
	arr := Array{}
	for {
		tok := p.s.Next()
		if tok.Kind == jparse.RSquare {
			return arr // end of array
		}
		arr = append(arr, p.parseElement(tok))

		switch next := p.s.Next(); next.Kind {
		case jparse.RSquare:
			return arr // end of array
		case jparse.Comma:
			// more elements, or the end of the array
		default:
			p.unexpected(next, `"," or "]"`)
		}
	}
}

func (p *Parser) enter() {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.syntaxError(ErrParsing, nil, "nesting depth exceeds %d", p.maxDepth)
	}
}

func (p *Parser) leave() { p.depth-- }

// unexpected reports a syntax error for tok where want was expected.
func (p *Parser) unexpected(tok jparse.Token, want string) {
	if tok.Kind == jparse.Illegal {
		p.syntaxError(ErrParsing, p.s.Err(), "expected %s, got %v", want, tok)
	}
	p.syntaxError(ErrParsing, nil, "expected %s, got %v", want, tok)
}

func (p *Parser) syntaxError(kind ErrorKind, err error, msg string, args ...any) {
	panic(&ParseError{
		Kind:     kind,
		Location: p.s.Location().First,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

func recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*ParseError); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}
