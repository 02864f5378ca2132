package main

import (
	"fmt"

	"github.com/npillmayer/lrkit/lr"
)

// sampleGrammar is the grammar for the LR(0) demonstration:
//
//    S ➞ A
//    A ➞ a A  |  b
//
func sampleGrammar() *lr.Grammar {
	g, err := lr.FromRules("Sample", "S", map[string][][]string{
		"S": {{"A"}},
		"A": {{"a", "A"}, {"b"}},
	})
	if err != nil {
		panic(fmt.Errorf("error creating sample grammar: %w", err))
	}
	return g
}

// sampleInputs are parsed with LR(0) tables for sampleGrammar.
var sampleInputs = []string{"a a b", "a a", "a b a"}

// arithmeticGrammar is an expression grammar over the token kinds of the
// arithmetic lexer:
//
//    E ➞ E PLUS T  |  T
//    T ➞ T TIMES F  |  F
//    F ➞ LPAREN E RPAREN  |  NUMBER  |  ID
//
func arithmeticGrammar() *lr.Grammar {
	b := lr.NewGrammarBuilder("Arithmetic")
	b.LHS("E").Sym("E").Sym("PLUS").Sym("T").End()
	b.LHS("E").Sym("T").End()
	b.LHS("T").Sym("T").Sym("TIMES").Sym("F").End()
	b.LHS("T").Sym("F").End()
	b.LHS("F").RHS("LPAREN", "E", "RPAREN")
	b.LHS("F").RHS("NUMBER")
	b.LHS("F").RHS("ID")
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Errorf("error creating arithmetic grammar: %w", err))
	}
	return g
}

// arithmeticInput is parsed with LR(1) tables for arithmeticGrammar.
const arithmeticInput = "2 + 3 * (x + 1)"
