package lr

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// === Items =================================================================

// Item is an LR item, i.e. a rule with a dot position marking parse progress:
//
//     A ➞ a • A
//
// LR(1) items additionally carry a lookahead terminal (possibly the end marker).
// LR(0) items have a lookahead of nil.
//
// Items are values and are compared by value. Within a grammar every (LHS, RHS)
// pair is a distinct rule, therefore comparing rules by pointer is comparing
// them by value.
type Item struct {
	rule *Rule
	dot  int
	la   *Symbol
}

// StartItem returns the item S' ➞ • S for the augmented start rule,
// with lookahead la (use nil for LR(0) items).
func StartItem(g *Grammar, la *Symbol) Item {
	return Item{rule: g.rules[0], la: la}
}

// Rule returns the rule of an item.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the dot position, 0…len(RHS).
func (i Item) Dot() int {
	return i.dot
}

// Lookahead returns the lookahead symbol of an LR(1) item, or nil.
func (i Item) Lookahead() *Symbol {
	return i.la
}

// PeekSymbol returns the symbol immediately after the dot, or nil if the dot is
// at the end of the rule.
func (i Item) PeekSymbol() *Symbol {
	if i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// Completed is true if the dot is behind the complete RHS.
func (i Item) Completed() bool {
	return i.dot == len(i.rule.rhs)
}

// Advance returns an item with the dot moved one symbol to the right.
// Advancing a completed item returns the item unchanged.
func (i Item) Advance() Item {
	if i.Completed() {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1, la: i.la}
}

// Prefix returns the symbols in front of the dot.
func (i Item) Prefix() []*Symbol {
	return i.rule.rhs[:i.dot]
}

// Rest returns the symbols following the symbol after the dot, i.e. β for
// an item A ➞ α • N β.
func (i Item) Rest() []*Symbol {
	if i.dot+1 >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot+1:]
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString(i.rule.LHS.Name)
	b.WriteString(" ➞")
	for n, A := range i.rule.rhs {
		if n == i.dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	if i.Completed() {
		b.WriteString(" •")
	}
	if i.la != nil {
		b.WriteString(", ")
		b.WriteString(i.la.Name)
	}
	return b.String()
}

func laSerial(A *Symbol) int {
	if A == nil {
		return -1
	}
	return A.Serial
}

// itemComparator orders items by rule, dot position and lookahead. Item sets kept
// in this order have a canonical encoding, independent of insertion order.
func itemComparator(a, b interface{}) int {
	i1, i2 := a.(Item), b.(Item)
	if c := utils.IntComparator(i1.rule.Serial, i2.rule.Serial); c != 0 {
		return c
	}
	if c := utils.IntComparator(i1.dot, i2.dot); c != 0 {
		return c
	}
	return utils.IntComparator(laSerial(i1.la), laSerial(i2.la))
}

// === Item Sets =============================================================

// ItemSet is a set of items. Two item sets are equal if they contain the same
// items, regardless of the order they have been added in.
type ItemSet struct {
	items *treeset.Set
}

// NewItemSet creates an item set from a list of items.
func NewItemSet(items ...Item) *ItemSet {
	S := &ItemSet{items: treeset.NewWith(itemComparator)}
	for _, i := range items {
		S.items.Add(i)
	}
	return S
}

// Add adds an item and returns true if it has not been contained before.
func (S *ItemSet) Add(i Item) bool {
	if S.items.Contains(i) {
		return false
	}
	S.items.Add(i)
	return true
}

// Contains checks for membership of an item.
func (S *ItemSet) Contains(i Item) bool {
	return S.items.Contains(i)
}

// Size returns the number of items.
func (S *ItemSet) Size() int {
	return S.items.Size()
}

// Empty is true for empty item sets.
func (S *ItemSet) Empty() bool {
	return S.items.Empty()
}

// Items returns the items in canonical order.
func (S *ItemSet) Items() []Item {
	vals := S.items.Values()
	items := make([]Item, len(vals))
	for n, v := range vals {
		items[n] = v.(Item)
	}
	return items
}

// Copy returns a shallow copy of S.
func (S *ItemSet) Copy() *ItemSet {
	return NewItemSet(S.Items()...)
}

// Equals is structural set equality.
func (S *ItemSet) Equals(other *ItemSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, v := range S.items.Values() {
		if !other.items.Contains(v) {
			return false
		}
	}
	return true
}

// itemRecord is the hashable canonical encoding of an item.
type itemRecord struct {
	Rule      int
	Dot       int
	Lookahead int
}

// fingerprint returns a structural hash over the canonical encoding of S.
// Equal item sets have equal fingerprints.
func (S *ItemSet) fingerprint() string {
	recs := make([]itemRecord, 0, S.Size())
	for _, i := range S.Items() {
		recs = append(recs, itemRecord{Rule: i.rule.Serial, Dot: i.dot, Lookahead: laSerial(i.la)})
	}
	h, err := structhash.Hash(recs, 1)
	if err != nil { // cannot happen for slices of plain structs
		panic(fmt.Sprintf("cannot hash item set: %v", err))
	}
	return h
}

func (S *ItemSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for n, i := range S.Items() {
		if n == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(i.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper
func (S *ItemSet) Dump() {
	for _, i := range S.Items() {
		tracer().Debugf("    %s", i)
	}
}

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing, and section 6.3 LR(1) Parsing

// Closure computes the closure of an item set: for every item with the dot
// immediately before a non-terminal N, the items N ➞ • γ for every production
// of N are included. Items with a lookahead (LR(1)) introduce items with
// lookaheads FIRST(β a), where β is the remainder of the originating item after N
// and a is its lookahead.
//
// The closure is computed by repeated passes over the working set, until a pass
// adds nothing. S is not modified.
func (ga *LRAnalysis) Closure(S *ItemSet) *ItemSet {
	C := S.Copy()
	for added := true; added; {
		added = false
		for _, item := range C.Items() {
			N := item.PeekSymbol()
			if N == nil || N.IsTerminal() {
				continue
			}
			var lookaheads []*Symbol
			if item.la == nil {
				lookaheads = []*Symbol{nil}
			} else {
				lookaheads = ga.lookaheads(item.Rest(), item.la)
			}
			for _, r := range ga.g.RulesFor(N) {
				for _, la := range lookaheads {
					if C.Add(Item{rule: r, la: la}) {
						tracer().Debugf("closure: adding %s", Item{rule: r, la: la})
						added = true
					}
				}
			}
		}
	}
	return C
}

// lookaheads returns FIRST(β a) as a sorted list of terminals.
func (ga *LRAnalysis) lookaheads(beta []*Symbol, a *Symbol) []*Symbol {
	first, nullable := ga.FirstOfString(beta)
	if nullable {
		first.Insert(a.Serial)
	}
	return ga.symbolsOf(first.AppendTo(nil))
}

// Goto computes goto(I, A): the closure of all items of I with the dot
// advanced over A. If no item of I has A immediately after its dot, the
// result is empty.
func (ga *LRAnalysis) Goto(I *ItemSet, A *Symbol) *ItemSet {
	kernel := NewItemSet()
	for _, i := range I.Items() {
		if i.PeekSymbol() == A {
			kernel.Add(i.Advance())
		}
	}
	if kernel.Empty() {
		return kernel
	}
	gclosure := ga.Closure(kernel)
	tracer().Debugf("goto(%s) --%s--> %s", I, A, gclosure)
	return gclosure
}
