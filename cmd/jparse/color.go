// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"
	"os"

	"github.com/creachadair/jparse/ast"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// outputStyle returns the rendering style for the given color mode ("auto",
// "always", or "never"). In auto mode, color is used only if w is a terminal.
func outputStyle(mode string, w io.Writer) ast.Style {
	if !useColor(mode, w) {
		return ast.Style{}
	}
	sprintf := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintfFunc()
	}
	return ast.Style{
		Label:  sprintf(color.FgMagenta, color.Bold),
		Key:    sprintf(color.FgBlue),
		String: sprintf(color.FgGreen),
		Number: sprintf(color.FgCyan),
		Bool:   sprintf(color.FgYellow),
		Type:   sprintf(color.Faint),
	}
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
