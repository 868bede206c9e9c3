// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a scanner for a lenient subset of JSON.
//
// The grammar differs from JSON in several ways: numbers are unsigned
// integers with no fraction or exponent, strings are taken verbatim with no
// escape sequences, there is no null constant, and any value (not only an
// object or array) may appear at the top level.
//
// # Scanning
//
// The Scanner type implements a lexical scanner over an in-memory input.
// Construct a scanner and call its Next method to iterate over the tokens:
//
//	s := jparse.NewScanner(input)
//	for tok := s.Next(); tok.Kind != jparse.EOF; tok = s.Next() {
//	   log.Printf("Next token: %v", tok)
//	}
//
// Next does not report errors. Input that does not form a valid token is
// reported as an Illegal token, and the Err method describes the problem:
//
//	if tok.Kind == jparse.Illegal {
//	   log.Printf("Bad input at %v: %v", s.Location(), s.Err())
//	}
//
// Once the input is exhausted, every call to Next returns an EOF token.
//
// # Parsing
//
// See package [github.com/creachadair/jparse/ast] for a parser that
// constructs value trees from scanner tokens.
package jparse
