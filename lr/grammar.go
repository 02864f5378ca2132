package lr

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/npillmayer/lrkit"
)

// === Symbols ===============================================================

// Symbol is a grammar symbol, either a terminal or a non-terminal. Symbols are
// created by grammar builders and are unique within a grammar, i.e. clients may
// compare symbols of one grammar by pointer.
type Symbol struct {
	Name     string // name of the symbol, as used in productions
	Serial   int    // position within the grammar's symbol list
	terminal bool
}

// IsTerminal returns true if this symbol is a terminal. A symbol is a terminal
// exactly if no productions are registered for it.
func (A *Symbol) IsTerminal() bool {
	return A.terminal
}

func (A *Symbol) String() string {
	return A.Name
}

// === Rules =================================================================

// Rule is a production of a grammar. Rule 0 is always the augmented start
// rule S' ➞ S.
type Rule struct {
	Serial int     // ordinal number of this rule
	LHS    *Symbol // non-terminal on the left hand side
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule. Clients must not modify the returned
// slice.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// Len is the number of symbols of the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEps returns true for epsilon-productions.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(r.LHS.Name)
	b.WriteString(" ➞")
	if r.IsEps() {
		b.WriteString(" ε")
	}
	for _, A := range r.rhs {
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	return b.String()
}

// === Grammar ===============================================================

// Grammar is an augmented context-free grammar. Grammars are immutable after
// having been created by a GrammarBuilder, and may safely be shared between
// goroutines.
type Grammar struct {
	Name         string
	rules        []*Rule
	symbols      []*Symbol // indexed by serial
	byName       map[string]*Symbol
	rulesByLHS   [][]*Rule // indexed by serial of LHS
	nonterminals []*Symbol
	terminals    []*Symbol
	start        *Symbol // S₀
	augmented    *Symbol // S'
	eof          *Symbol
}

// Rule returns rule #i, or nil if there is no such rule.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all rules of the grammar, including the augmented start rule
// at position 0.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// RulesFor returns the productions of non-terminal N in registration order.
// For terminals, an empty slice is returned.
func (g *Grammar) RulesFor(N *Symbol) []*Rule {
	if N == nil || N.Serial >= len(g.rulesByLHS) {
		return nil
	}
	return g.rulesByLHS[N.Serial]
}

// Start returns the start symbol S₀ of the original grammar.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// AugmentedStart returns the fresh start symbol S' of the augmented grammar.
func (g *Grammar) AugmentedStart() *Symbol {
	return g.augmented
}

// EOF returns the end-of-input marker symbol. It is a terminal, but is never part
// of a production.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// SymbolByName returns the symbol with a given name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.byName[name]
}

// Symbol returns the symbol with serial number n, or nil.
func (g *Grammar) Symbol(n int) *Symbol {
	if n < 0 || n >= len(g.symbols) {
		return nil
	}
	return g.symbols[n]
}

// SymbolCount is the number of symbols, including S' and the end marker.
func (g *Grammar) SymbolCount() int {
	return len(g.symbols)
}

// Terminals returns all terminals in serial order, excluding the end marker.
func (g *Grammar) Terminals() []*Symbol {
	return g.terminals
}

// NonTerminals returns all non-terminals in serial order, including S'.
func (g *Grammar) NonTerminals() []*Symbol {
	return g.nonterminals
}

// EachSymbol calls f for every symbol which may occur after the dot of an item,
// i.e. every non-terminal and terminal except S' and the end marker. Symbols
// are visited in serial order.
func (g *Grammar) EachSymbol(f func(A *Symbol)) {
	for _, A := range g.symbols {
		if A == g.augmented || A == g.eof {
			continue
		}
		f(A)
	}
}

// Dump is a debugging helper which traces all rules.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -----------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("--------------------------------------")
}

// === Grammar Builder =======================================================

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder, add productions and then call Grammar():
//
//     b := lr.NewGrammarBuilder("G")
//     b.LHS("S").Sym("A").End()           // S ➞ A
//     b.LHS("A").Sym("a").Sym("A").End()  // A ➞ a A
//     b.LHS("A").RHS("b")                 // A ➞ b
//     g, err := b.Grammar()
//
// Terminals are not declared: every symbol without productions is a terminal.
// The first LHS is the start symbol, unless Start() sets another one.
type GrammarBuilder struct {
	name  string
	start string
	order []string              // non-terminals in registration order
	prods map[string][][]string // productions per non-terminal
	err   error
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  name,
		prods: make(map[string][][]string),
	}
}

// Start sets the start symbol of the grammar.
func (gb *GrammarBuilder) Start(name string) *GrammarBuilder {
	gb.start = name
	return gb
}

// LHS starts a new production for non-terminal name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: name}
}

// RuleBuilder collects the right hand side of a single production.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []string
}

// Sym appends a symbol to the right hand side.
func (rb *RuleBuilder) Sym(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, name)
	return rb
}

// RHS appends symbols and ends the production.
func (rb *RuleBuilder) RHS(names ...string) {
	rb.rhs = append(rb.rhs, names...)
	rb.End()
}

// Epsilon ends an empty production.
func (rb *RuleBuilder) Epsilon() {
	rb.rhs = rb.rhs[:0]
	rb.End()
}

// End ends the production and registers it with the grammar builder.
func (rb *RuleBuilder) End() {
	rb.gb.register(rb.lhs, rb.rhs)
}

func (gb *GrammarBuilder) register(lhs string, rhs []string) {
	if lhs == "" {
		gb.fail(fmt.Errorf("grammar %s: production with empty LHS", gb.name))
		return
	}
	for _, name := range rhs {
		if name == "" {
			gb.fail(fmt.Errorf("grammar %s: production for %s contains an empty symbol name", gb.name, lhs))
			return
		}
		if name == lrkit.EOF {
			gb.fail(fmt.Errorf("grammar %s: symbol name %s is reserved", gb.name, lrkit.EOF))
			return
		}
	}
	prods, exists := gb.prods[lhs]
	if !exists {
		gb.order = append(gb.order, lhs)
	}
	for _, p := range prods {
		if equalSyms(p, rhs) {
			tracer().Debugf("ignoring duplicate production for %s", lhs)
			return
		}
	}
	gb.prods[lhs] = append(prods, append([]string(nil), rhs...))
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		gb.err = err
	}
}

func equalSyms(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Grammar classifies all symbols, augments the grammar by a fresh start
// symbol and returns the resulting grammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if len(gb.order) == 0 {
		return nil, fmt.Errorf("grammar %s has no productions", gb.name)
	}
	start := gb.start
	if start == "" {
		start = gb.order[0]
	}
	if _, ok := gb.prods[start]; !ok {
		return nil, fmt.Errorf("grammar %s: start symbol %s has no productions", gb.name, start)
	}
	g := &Grammar{
		Name:   gb.name,
		byName: make(map[string]*Symbol),
	}
	augname := start + "'"
	for gb.prods[augname] != nil || gb.mentions(augname) {
		augname += "'"
	}
	g.augmented = g.newSymbol(augname, false)
	g.nonterminals = append(g.nonterminals, g.augmented)
	for _, name := range gb.order {
		g.nonterminals = append(g.nonterminals, g.newSymbol(name, false))
	}
	g.start = g.byName[start]
	for _, name := range gb.order { // every remaining symbol is a terminal
		for _, rhs := range gb.prods[name] {
			for _, sym := range rhs {
				if g.byName[sym] == nil {
					g.terminals = append(g.terminals, g.newSymbol(sym, true))
				}
			}
		}
	}
	g.eof = g.newSymbol(lrkit.EOF, true)
	g.rulesByLHS = make([][]*Rule, len(g.symbols))
	g.addRule(g.augmented, []*Symbol{g.start})
	for _, name := range gb.order {
		lhs := g.byName[name]
		for _, rhs := range gb.prods[name] {
			syms := make([]*Symbol, len(rhs))
			for i, sym := range rhs {
				syms[i] = g.byName[sym]
			}
			g.addRule(lhs, syms)
		}
	}
	tracer().Infof("grammar %s: %d rules, %d non-terminals, %d terminals", g.Name,
		len(g.rules), len(g.nonterminals), len(g.terminals))
	return g, nil
}

func (gb *GrammarBuilder) mentions(name string) bool {
	for _, prods := range gb.prods {
		for _, rhs := range prods {
			for _, sym := range rhs {
				if sym == name {
					return true
				}
			}
		}
	}
	return false
}

func (g *Grammar) newSymbol(name string, terminal bool) *Symbol {
	A := &Symbol{Name: name, Serial: len(g.symbols), terminal: terminal}
	g.symbols = append(g.symbols, A)
	g.byName[name] = A
	return A
}

func (g *Grammar) addRule(lhs *Symbol, rhs []*Symbol) {
	r := &Rule{Serial: len(g.rules), LHS: lhs, rhs: rhs}
	g.rules = append(g.rules, r)
	g.rulesByLHS[lhs.Serial] = append(g.rulesByLHS[lhs.Serial], r)
}

// FromRules creates a grammar from a plain mapping of non-terminals to their
// productions. Go maps are unordered, therefore the start symbol has to be given
// explicitly; the remaining non-terminals are registered in lexical order.
func FromRules(name string, start string, rules map[string][][]string) (*Grammar, error) {
	b := NewGrammarBuilder(name).Start(start)
	lhss := make([]string, 0, len(rules))
	for lhs := range rules {
		if lhs != start {
			lhss = append(lhss, lhs)
		}
	}
	sort.Strings(lhss)
	if _, ok := rules[start]; ok {
		lhss = append([]string{start}, lhss...)
	}
	for _, lhs := range lhss {
		for _, rhs := range rules[lhs] {
			b.LHS(lhs).RHS(rhs...)
		}
	}
	return b.Grammar()
}
