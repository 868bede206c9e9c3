// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an in-memory input. Each call to Next
// advances the scanner past the next token and returns it.
type Scanner struct {
	src      mem.RO
	comments bool // skip comments as whitespace
	tok      Token
	err      error

	pos, end int // start and end offsets of current token

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes input from src.
func NewScanner(src string) *Scanner { return &Scanner{src: mem.S(src)} }

// NewScannerBytes constructs a new lexical scanner that consumes input from
// src. The scanner does not modify src, and the caller must not modify it
// while the scanner is in use.
func NewScannerBytes(src []byte) *Scanner { return &Scanner{src: mem.B(src)} }

// AllowComments configures the scanner to skip (true) or reject (false)
// comments. Comments are not part of the grammar. If enabled, C++ style block
// comments (/* ... */) and line comments (// ...) are treated as whitespace.
func (s *Scanner) AllowComments(ok bool) { s.comments = ok }

// Next advances s to the next token of the input and returns it. Next never
// fails: input that does not form a token is reported as Illegal, and Err
// reports why. At the end of the input, Next returns an EOF token, and will do
// so on every subsequent call.
func (s *Scanner) Next() Token {
	s.err = nil
	s.skipSpace()
	s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol

	ch, ok := s.take()
	if !ok {
		return s.setTok(tokEOF)
	}

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		return s.setTok(Token{Kind: k})
	}

	switch {
	case ch == '"':
		return s.scanString()
	case isLetter(ch):
		return s.scanConst()
	case isDigit(ch):
		return s.scanInt()
	}
	return s.failf("unexpected %q", ch)
}

// Token returns the most recent token reported by Next.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the lexical error behind the most recent Illegal token, or nil.
// A non-nil error has concrete type *ScanError.
func (s *Scanner) Err() error { return s.err }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

// scanString reads the body of a string after its opening quote. There are
// no escapes. The first rune after the opening quote always belongs to the
// text, even if it is itself a quotation mark; the string then runs to the
// next quotation mark. If the input ends first, the partial string is
// reported as-is.
func (s *Scanner) scanString() Token {
	start := s.end
	if _, ok := s.take(); !ok {
		return s.failf("unterminated string")
	}
	for {
		ch, ok := s.take()
		if !ok {
			return s.setTok(Token{Kind: String, Text: s.src.SliceFrom(start).StringCopy()})
		} else if ch == '"' {
			text := s.src.SliceFrom(start).SliceTo(s.end - start - 1)
			return s.setTok(Token{Kind: String, Text: text.StringCopy()})
		}
	}
}

// scanConst reads a constant. Exactly four runes are consumed (including the
// one already read) before the word is classified, even if that reaches into
// the text of following tokens. The word "fals" must be followed by "e".
func (s *Scanner) scanConst() Token {
	for i := 1; i < 4; i++ {
		if _, ok := s.take(); !ok {
			return s.failf("truncated constant %q", s.text().StringCopy())
		}
	}
	switch word := s.text(); {
	case word.Equal(mem.S("true")):
		return s.setTok(Token{Kind: Bool, Bool: true})
	case word.Equal(mem.S("fals")):
		if ch, _ := s.peek(); ch == 'e' {
			s.take()
			return s.setTok(Token{Kind: Bool, Bool: false})
		}
		return s.failf("unknown constant %q", word.StringCopy())
	default:
		return s.failf("unknown constant %q", word.StringCopy())
	}
}

// scanInt reads a maximal run of decimal digits as a 32-bit integer.
// Values out of range are rejected, not truncated.
func (s *Scanner) scanInt() Token {
	for {
		ch, nb := s.peek()
		if nb == 0 || !isDigit(ch) {
			break
		}
		s.take()
	}
	text := s.text().StringCopy()
	v, err := strconv.ParseInt(text, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return s.failf("integer %s: %w", text, strconv.ErrRange)
	} else if err != nil {
		return s.failf("invalid integer %q", text)
	}
	return s.setTok(Token{Kind: Int, Int: int32(v)})
}

// skipSpace discards whitespace, and comments if they are enabled.
func (s *Scanner) skipSpace() {
	for {
		ch, nb := s.peek()
		if nb == 0 {
			return
		} else if unicode.IsSpace(ch) {
			s.take()
		} else if ch != '/' || !s.comments || !s.skipComment() {
			return
		}
	}
}

// skipComment consumes a comment starting at the current offset and reports
// whether it did so. An unterminated block comment runs to the end of input.
func (s *Scanner) skipComment() bool {
	rest := s.src.SliceFrom(s.end)
	if rest.Len() < 2 {
		return false
	}
	switch rest.At(1) {
	case '/': // line comment to LF
		s.take()
		s.take()
		for {
			if ch, ok := s.take(); !ok || ch == '\n' {
				return true
			}
		}

	case '*': // block comment
		s.take()
		s.take()
		for {
			ch, ok := s.take()
			if !ok {
				return true
			} else if ch == '*' {
				if next, _ := s.peek(); next == '/' {
					s.take()
					return true
				}
			}
		}
	}
	return false
}

// peek decodes the rune at the current offset without consuming it.
// At the end of input it returns a size of 0.
func (s *Scanner) peek() (rune, int) {
	return mem.DecodeRune(s.src.SliceFrom(s.end))
}

// take consumes a single rune and reports whether one was available.
func (s *Scanner) take() (rune, bool) {
	ch, nb := s.peek()
	if nb == 0 {
		return 0, false
	}
	s.end += nb
	if ch == '\n' {
		s.eline++
		s.ecol = 0
	} else {
		s.ecol += nb
	}
	return ch, true
}

// text returns the raw text of the current token.
func (s *Scanner) text() mem.RO { return s.src.SliceFrom(s.pos).SliceTo(s.end - s.pos) }

func (s *Scanner) setTok(t Token) Token {
	s.tok = t
	return t
}

func (s *Scanner) failf(msg string, args ...any) Token {
	s.err = &ScanError{Offset: s.pos, Err: fmt.Errorf(msg, args...)}
	return s.setTok(tokIllegal)
}

// ScanError is the concrete type of lexical errors reported by Scanner.Err.
type ScanError struct {
	Offset int // offset of the start of the illegal token
	Err    error
}

// Error satisfies the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Err.Error(), e.Offset)
}

// Unwrap supports error wrapping.
func (e *ScanError) Unwrap() error { return e.Err }

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
func isLetter(ch rune) bool {
	return ch == '_' || unicode.In(ch, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Illegal, false
}
