package lr

import (
	"golang.org/x/tools/container/intsets"
)

// LRAnalysis is an object for grammar analysis (compute FIRST and FOLLOW sets
// and nullable non-terminals). Create one with lr.Analysis(g).
//
// Sets of terminals are represented as sparse integer sets over symbol serials.
type LRAnalysis struct {
	g        *Grammar
	nullable []bool           // by symbol serial
	first    []intsets.Sparse // by symbol serial
	follow   []intsets.Sparse // by symbol serial
}

// Analysis creates an analyser for a grammar and computes FIRST and FOLLOW
// sets for all symbols.
func Analysis(g *Grammar) *LRAnalysis {
	ga := &LRAnalysis{
		g:        g,
		nullable: make([]bool, g.SymbolCount()),
		first:    make([]intsets.Sparse, g.SymbolCount()),
		follow:   make([]intsets.Sparse, g.SymbolCount()),
	}
	ga.computeFirstSets()
	ga.computeFollowSets()
	return ga
}

// Grammar returns the grammar this analyser is working on.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// FIRST(a) = { a } for terminals. For non-terminals, FIRST sets are computed by
// iterating over all rules until no FIRST set grows any more. A non-terminal
// which occurs in its own derivation contributes on a later pass only what has
// been collected so far, thus left- and mutual recursion are harmless.
func (ga *LRAnalysis) computeFirstSets() {
	for _, A := range ga.g.symbols {
		if A.IsTerminal() {
			ga.first[A.Serial].Insert(A.Serial)
		}
	}
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for _, r := range ga.g.rules {
			lhs := r.LHS.Serial
			allNullable := true
			for _, X := range r.rhs {
				if unionGrows(&ga.first[lhs], &ga.first[X.Serial]) {
					changed = true
				}
				if !ga.nullable[X.Serial] {
					allNullable = false
					break
				}
			}
			if allNullable && !ga.nullable[lhs] {
				ga.nullable[lhs] = true
				changed = true
			}
		}
	}
	tracer().Debugf("FIRST sets computed in %d passes", passes)
}

// FOLLOW(S') = { #eof }. For every rule A ➞ α N β, FOLLOW(N) contains
// FIRST(β), and FOLLOW(A) if β is nullable. Iterates to a fixed point.
func (ga *LRAnalysis) computeFollowSets() {
	ga.follow[ga.g.augmented.Serial].Insert(ga.g.eof.Serial)
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for _, r := range ga.g.rules {
			for n, N := range r.rhs {
				if N.IsTerminal() {
					continue
				}
				first, nullable := ga.FirstOfString(r.rhs[n+1:])
				if unionGrows(&ga.follow[N.Serial], first) {
					changed = true
				}
				if nullable && unionGrows(&ga.follow[N.Serial], &ga.follow[r.LHS.Serial]) {
					changed = true
				}
			}
		}
	}
	tracer().Debugf("FOLLOW sets computed in %d passes", passes)
}

// unionGrows sets s to s ∪ x and reports whether s has grown. UnionWith's own
// result may be true for s ⊇ x.
func unionGrows(s, x *intsets.Sparse) bool {
	n := s.Len()
	s.UnionWith(x)
	return s.Len() != n
}

// FirstOfString returns FIRST(X1 … Xn) (without ε) and a flag which is true if
// every Xi is nullable, i.e. ε ∈ FIRST(X1 … Xn). The empty string is nullable.
func (ga *LRAnalysis) FirstOfString(syms []*Symbol) (*intsets.Sparse, bool) {
	set := &intsets.Sparse{}
	for _, X := range syms {
		set.UnionWith(&ga.first[X.Serial])
		if !ga.nullable[X.Serial] {
			return set, false
		}
	}
	return set, true
}

// First returns FIRST(A), without ε. Use Nullable(A) to check for ε ∈ FIRST(A).
func (ga *LRAnalysis) First(A *Symbol) *intsets.Sparse {
	set := &intsets.Sparse{}
	set.Copy(&ga.first[A.Serial])
	return set
}

// Follow returns FOLLOW(A) for a non-terminal A.
func (ga *LRAnalysis) Follow(A *Symbol) *intsets.Sparse {
	set := &intsets.Sparse{}
	set.Copy(&ga.follow[A.Serial])
	return set
}

// Nullable returns true if A derives the empty string.
func (ga *LRAnalysis) Nullable(A *Symbol) bool {
	return ga.nullable[A.Serial]
}

// FirstNames returns FIRST(A) as a list of terminal names, in serial order.
func (ga *LRAnalysis) FirstNames(A *Symbol) []string {
	return symbolNames(ga.symbolsOf(ga.first[A.Serial].AppendTo(nil)))
}

// FollowNames returns FOLLOW(A) as a list of terminal names, in serial order.
func (ga *LRAnalysis) FollowNames(A *Symbol) []string {
	return symbolNames(ga.symbolsOf(ga.follow[A.Serial].AppendTo(nil)))
}

func (ga *LRAnalysis) symbolsOf(serials []int) []*Symbol {
	syms := make([]*Symbol, len(serials))
	for n, s := range serials {
		syms[n] = ga.g.symbols[s]
	}
	return syms
}

func symbolNames(syms []*Symbol) []string {
	names := make([]string, len(syms))
	for n, A := range syms {
		names[n] = A.Name
	}
	return names
}
