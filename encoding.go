// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"github.com/creachadair/jparse/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
//
// The scanner does not decode escapes, so Quote(t.Text) of a String token
// escapes any backslashes in the source text.
func Quote(src string) string { return string(escape.Append(nil, mem.S(src))) }

// AppendQuote appends the quoted encoding of src to buf, as Quote.
func AppendQuote(buf []byte, src string) []byte { return escape.Append(buf, mem.S(src)) }
