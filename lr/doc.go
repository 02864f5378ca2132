/*
Package lr implements the construction of LR parser tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are not
declared: every symbol without productions of its own is a terminal. Grammars
may contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").Sym("A").End()           // S  ➞  A
    b.LHS("A").Sym("a").Sym("A").End()  // A  ➞  a A
    b.LHS("A").RHS("b")                 // A  ➞  b
    g, err := b.Grammar()

The grammar is augmented by a fresh start symbol S', resulting in:

   g.Dump()

   0: S' ➞ S
   1: S ➞ A
   2: A ➞ a A
   3: A ➞ b

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LRAnalysis object, which computes FIRST and
FOLLOW sets for the grammar and determines all epsilon-derivable non-terminals.
FIRST sets are needed for the lookaheads of LR(1) items, FOLLOW sets for
SLR(1) reduce entries.

    ga := lr.Analysis(g)
    fmt.Println(ga.FirstNames(g.SymbolByName("A")))  // [a b]

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First a characteristic finite state machine (CFSM) is built from the
grammar, i.e. the canonical collection of item sets together with the goto
transitions between them. The CFSM will then be transformed into a GOTO table
and an ACTION table, for one of the variants LR(0), SLR(1) or LR(1).
The CFSM will not be thrown away, but is made available to the client.
It can be exported to Graphviz's Dot-format.

Example:

    lrgen := lr.NewTableGenerator(ga, lr.WithVariant(lr.LR1))
    lrgen.CreateTables()              // construct LR parser tables
    if lrgen.HasConflicts() { ... }   // inspect lrgen.Conflicts()

Conflicting table entries never abort table construction. They are recorded
and reported with the tables.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.lr")
}
