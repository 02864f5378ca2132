/*
Command lrkit creates LR parser tables for context-free grammars and runs a
table-driven parser with them.

	lrkit demo
	lrkit tables [--variant lr0|slr1|lr1] [--dot FILE] [--html FILE] GRAMMAR...
	lrkit parse  [--variant v] [--lex] GRAMMAR INPUT...
	lrkit repl   [--variant v] [--lex] GRAMMAR

Grammar files may be YAML, TOML or EBNF files (see package grammarfile).
Settings not given by flags are taken from a TOML configuration file (--config):

	[general]
	trace_level = "Info"

	[tables]
	variant = "lr1"
	dot_file = "cfsm.dot"
	html_file = "tables.html"

	[repl]
	prompt = "lrkit> "
	history_file = "/tmp/lrkit.history"

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.lr'
func tracer() tracing.Trace {
	return tracing.Select("lrkit.lr")
}
