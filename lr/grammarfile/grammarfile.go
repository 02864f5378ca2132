/*
Package grammarfile reads grammar descriptions from files. Supported formats
are YAML, TOML and EBNF (in the notation of golang.org/x/exp/ebnf).

A YAML grammar file looks like this:

	name: A
	start: S
	rules:
	  S:
	    - [A]
	  A:
	    - [a, A]
	    - [b]

Rules are registered in the order they appear in the file; the first rule is
the start symbol, unless 'start' names another one. An empty list is an
epsilon-production. Instead of a list, an alternative may be a single string of
white space separated symbols.

TOML files use the same keys:

	name = "A"
	start = "S"
	[rules]
	S = [["A"]]
	A = [["a", "A"], ["b"]]

EBNF files contain productions of the form

	S = A .
	A = "a" A | "b" .

with alternatives of sequences of names and quoted tokens. Quoted tokens and
names without a production are terminals. A production without a right hand
side, like 'B = .', is an epsilon-production. Groups, options, repetitions and
ranges have no plain BNF counterpart and are rejected.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammarfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.lr")
}

// FormatError is returned for grammar files which cannot be read or
// do not describe a valid grammar.
type FormatError struct {
	File string
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grammar file %s: %s: %v", e.File, e.Msg, e.Err)
	}
	return fmt.Sprintf("grammar file %s: %s", e.File, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatError(file string, err error, format string, args ...interface{}) *FormatError {
	return &FormatError{File: file, Msg: fmt.Sprintf(format, args...), Err: err}
}

// LoadFile reads a grammar from a file. The format is selected by the file
// extension (.yaml, .yml, .toml or .ebnf). The grammar is named after the file,
// unless the file sets a name.
func LoadFile(path string) (*lr.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tracer().Infof("loading grammar %s from %s", name, path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(name, path, f)
	case ".toml":
		return loadTOML(name, path, f)
	case ".ebnf":
		return loadEBNF(name, path, f, "")
	}
	return nil, formatError(path, nil, "unknown grammar file type %q", filepath.Ext(path))
}

// LoadFiles reads a list of grammar files, stopping at the first error.
func LoadFiles(paths []string) ([]*lr.Grammar, error) {
	grammars := make([]*lr.Grammar, 0, len(paths))
	for _, path := range paths {
		g, err := LoadFile(path)
		if err != nil {
			return grammars, err
		}
		grammars = append(grammars, g)
	}
	return grammars, nil
}

// ruleList collects productions in the order they have been read.
type ruleList struct {
	name  string
	start string
	lhs   []string
	rhs   [][]string
}

func (rl *ruleList) add(lhs string, rhs []string) {
	rl.lhs = append(rl.lhs, lhs)
	rl.rhs = append(rl.rhs, rhs)
}

func (rl *ruleList) grammar(file string) (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder(rl.name)
	if rl.start != "" {
		b.Start(rl.start)
	}
	for n, lhs := range rl.lhs {
		b.LHS(lhs).RHS(rl.rhs[n]...)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, formatError(file, err, "invalid grammar")
	}
	return g, nil
}
