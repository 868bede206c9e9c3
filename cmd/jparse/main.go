// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jparse parses a document in the lenient JSON-like grammar of
// package jparse and prints the resulting value tree, or the parse error.
//
// Usage:
//
//	jparse [flags] [file]
//
// If no file is given, or the file is "-", input is read from stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jparse/ast"
	"github.com/creachadair/jparse/ast/cursor"
	"github.com/goccy/go-yaml"
	"github.com/tailscale/hujson"
)

// Exit codes reported by run.
const (
	exitOK         = 0
	exitParseError = 1
	exitInputError = 2
)

// CLI defines the command-line interface.
type CLI struct {
	File     string   `arg:"" optional:"" help:"Input file to parse; stdin if omitted or \"-\"."`
	Comments bool     `help:"Treat /* block */ and // line comments as whitespace." short:"c"`
	MaxDepth int      `help:"Maximum nesting depth of objects and arrays (0 is unlimited)." default:"0"`
	Strict   bool     `help:"Reject input following the first value." short:"s"`
	HuJSON   bool     `name:"hujson" help:"Standardize HuJSON input (comments, trailing commas) before parsing."`
	JSON     bool     `help:"Print compact JSON instead of the tree rendering." short:"j" xor:"output"`
	YAML     bool     `help:"Print YAML instead of the tree rendering." short:"y" xor:"output"`
	Path     []string `help:"Select a subtree by object key or array index (repeatable)." short:"p"`
	Color    string   `help:"Colorize the tree rendering." enum:"auto,always,never" default:"auto"`
	Verbose  bool     `help:"Enable debug logging." short:"v"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Exit))
}

// run executes the program with the given arguments and returns its exit
// status. The exit function is called by the flag parser for --help.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, exit func(int)) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("jparse"),
		kong.Description("Parse a JSON-like document and print its value tree."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
	if err != nil {
		fmt.Fprintf(stderr, "jparse: %v\n", err)
		return exitInputError
	}
	if _, err := parser.Parse(args); err != nil {
		parser.Errorf("%v", err)
		return exitInputError
	}
	log := newLogger(stderr, cli.Verbose)

	data, err := readInput(cli.File, stdin)
	if err != nil {
		log.Error("reading input", "error", err)
		return exitInputError
	}
	log.Debug("read input", "file", inputName(cli.File), "bytes", len(data))

	if cli.HuJSON {
		std, err := hujson.Standardize(data)
		if err != nil {
			log.Error("standardizing HuJSON input", "error", err)
			return exitInputError
		}
		data = std
	}

	v, err := ast.NewParser(string(data), &ast.ParseOptions{
		AllowComments: cli.Comments,
		MaxDepth:      cli.MaxDepth,
		RequireEOF:    cli.Strict,
	}).Parse()
	if err != nil {
		var perr *ast.ParseError
		if errors.As(err, &perr) {
			log.Debug("parse failed", "detail", perr.Detail())
		}
		fmt.Fprintln(stdout, err)
		return exitParseError
	}

	if len(cli.Path) != 0 {
		c := cursor.New(v).Down(pathElements(cli.Path)...)
		if err := c.Err(); err != nil {
			log.Error("selecting path", "path", cli.Path, "error", err)
			return exitInputError
		}
		v = c.Value()
	}

	switch {
	case cli.JSON:
		if _, err := fmt.Fprintln(stdout, v.JSON()); err != nil {
			log.Error("writing output", "error", err)
			return exitInputError
		}
		return exitOK
	case cli.YAML:
		out, err := yaml.Marshal(ast.ToAny(v))
		if err != nil {
			log.Error("encoding YAML", "error", err)
			return exitInputError
		}
		if _, err := stdout.Write(out); err != nil {
			log.Error("writing output", "error", err)
			return exitInputError
		}
		return exitOK
	}
	opts := &ast.FormatOptions{Style: outputStyle(cli.Color, stdout)}
	if err := ast.Format(stdout, v, opts); err != nil {
		log.Error("writing output", "error", err)
		return exitInputError
	}
	return exitOK
}

// newLogger returns a text logger writing to w without timestamps.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// readInput reads the contents of the named file, or of stdin if the name is
// empty or "-".
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func inputName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}

// pathElements converts path arguments to cursor path elements. Arguments
// that parse as integers are array indices; all others are object keys.
func pathElements(args []string) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		if z, err := strconv.Atoi(arg); err == nil {
			out[i] = z
		} else {
			out[i] = arg
		}
	}
	return out
}
