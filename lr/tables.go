package lr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lrkit/lr/sparse"
)

// Variant selects the kind of parser tables to construct.
type Variant int

// Table variants.
const (
	LR0  Variant = iota // LR(0) items, reduce regardless of lookahead
	SLR1                // LR(0) items, reduce on FOLLOW(LHS)
	LR1                 // canonical LR(1) items, reduce on the item's lookahead
)

func (v Variant) String() string {
	switch v {
	case LR0:
		return "LR(0)"
	case SLR1:
		return "SLR(1)"
	case LR1:
		return "LR(1)"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant parses a variant name like "lr0", "slr1" or "LR(1)".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.NewReplacer("(", "", ")", "").Replace(s)) {
	case "lr0":
		return LR0, nil
	case "slr1", "slr":
		return SLR1, nil
	case "lr1":
		return LR1, nil
	}
	return LR0, fmt.Errorf("unknown table variant %q", s)
}

// === Actions ===============================================================

// ActionKind is the kind of an ACTION table entry.
type ActionKind int8

// Kinds of actions. NoAction denotes an empty table cell.
const (
	NoAction ActionKind = iota
	Shift
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	}
	return "<none>"
}

// Action is an entry of the ACTION table: Shift(Target), Reduce(Rule) or Accept.
type Action struct {
	Kind   ActionKind
	Target int   // Shift: state to push
	Rule   *Rule // Reduce: rule to reduce
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("shift %d", a.Target)
	case Reduce:
		return fmt.Sprintf("reduce %s", a.Rule)
	case Accept:
		return "accept"
	}
	return "<none>"
}

// Actions are stored as int32 in a sparse matrix:
// shift to state s is s, accept is AcceptAction, reducing rule r is -(r+2).
const AcceptAction = -1

func (a Action) encode() int32 {
	switch a.Kind {
	case Shift:
		return int32(a.Target)
	case Reduce:
		return int32(-(a.Rule.Serial + 2))
	case Accept:
		return AcceptAction
	}
	return sparse.DefaultNullValue
}

func decodeAction(g *Grammar, v int32) Action {
	switch {
	case v == sparse.DefaultNullValue:
		return Action{}
	case v == AcceptAction:
		return Action{Kind: Accept}
	case v >= 0:
		return Action{Kind: Shift, Target: int(v)}
	}
	return Action{Kind: Reduce, Rule: g.Rule(int(-v) - 2)}
}

// === Conflicts =============================================================

// ConflictKind classifies conflicts.
type ConflictKind int8

// Conflict kinds. An accept is treated as a reduce of the start rule.
const (
	ShiftReduce ConflictKind = iota
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ShiftReduce {
		return "shift/reduce"
	}
	return "reduce/reduce"
}

// Conflict is recorded whenever a second, different action is written into an
// occupied ACTION table cell. The table keeps the first action.
type Conflict struct {
	State    int
	Symbol   *Symbol
	Kind     ConflictKind
	Existing Action // action present in the cell
	Incoming Action // action which could not be placed
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s conflict in state %d on %s: %s / %s",
		c.Kind, c.State, c.Symbol, c.Existing, c.Incoming)
}

// === Tables ================================================================

// Tables holds the ACTION and GOTO tables for a grammar, together with the
// CFSM they have been derived from and the conflicts found on the way.
// Tables are not modified after construction and may be shared between parsers.
type Tables struct {
	Variant   Variant
	g         *Grammar
	cfsm      *CFSM
	action    *sparse.IntMatrix // states x symbols
	gototable *sparse.IntMatrix // states x symbols
	conflicts []Conflict
}

// Grammar returns the grammar for the tables.
func (t *Tables) Grammar() *Grammar {
	return t.g
}

// CFSM returns the CFSM the tables have been built from.
func (t *Tables) CFSM() *CFSM {
	return t.cfsm
}

// StateCount returns the number of parser states.
func (t *Tables) StateCount() int {
	return t.cfsm.StateCount()
}

// Action returns the ACTION table entry for a state and a terminal. For empty
// cells, and for non-terminals, an action of kind NoAction is returned.
func (t *Tables) Action(state int, A *Symbol) Action {
	if A == nil || !A.IsTerminal() || state < 0 || state >= t.action.M() {
		return Action{}
	}
	return decodeAction(t.g, t.action.Value(state, A.Serial))
}

// ActionFor is a variant of Action which takes a terminal name.
func (t *Tables) ActionFor(state int, terminal string) Action {
	return t.Action(state, t.g.SymbolByName(terminal))
}

// Actions returns both the primary and the secondary (conflicting) action of a cell.
func (t *Tables) Actions(state int, A *Symbol) (Action, Action) {
	if A == nil || !A.IsTerminal() || state < 0 || state >= t.action.M() {
		return Action{}, Action{}
	}
	a, b := t.action.Values(state, A.Serial)
	return decodeAction(t.g, a), decodeAction(t.g, b)
}

// Goto returns the GOTO table entry for a state and a non-terminal.
func (t *Tables) Goto(state int, N *Symbol) (int, bool) {
	if N == nil || N.IsTerminal() || state < 0 || state >= t.gototable.M() {
		return 0, false
	}
	v := t.gototable.Value(state, N.Serial)
	if v == t.gototable.NullValue() {
		return 0, false
	}
	return int(v), true
}

// Conflicts returns all conflicts, in order of detection.
func (t *Tables) Conflicts() []Conflict {
	return t.conflicts
}

// HasConflicts is true if at least one table cell is ambiguous.
func (t *Tables) HasConflicts() bool {
	return len(t.conflicts) > 0
}

// ActionEntryCount is the number of occupied ACTION table cells.
func (t *Tables) ActionEntryCount() int {
	return t.action.ValueCount()
}

// GotoEntryCount is the number of occupied GOTO table cells.
func (t *Tables) GotoEntryCount() int {
	return t.gototable.ValueCount()
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G, then a LRAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an LR-parser recognizing grammar G.
type TableGenerator struct {
	g       *Grammar
	ga      *LRAnalysis
	variant Variant
	dfa     *CFSM
	tables  *Tables
}

// Option configures a table generator.
type Option func(*TableGenerator)

// WithVariant selects the table variant. Default is LR(0).
func WithVariant(v Variant) Option {
	return func(lrgen *TableGenerator) {
		lrgen.variant = v
	}
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LRAnalysis, opts ...Option) *TableGenerator {
	lrgen := &TableGenerator{
		g:  ga.Grammar(),
		ga: ga,
	}
	for _, opt := range opts {
		opt(lrgen)
	}
	return lrgen
}

// Variant returns the table variant the generator is configured for.
func (lrgen *TableGenerator) Variant() Variant {
	return lrgen.variant
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		lrgen.dfa = buildCFSM(lrgen.ga, lrgen.variant == LR1)
	}
	return lrgen.dfa
}

// CreateTables creates the CFSM and the ACTION and GOTO tables.
func (lrgen *TableGenerator) CreateTables() *Tables {
	cfsm := lrgen.CFSM()
	statescnt, symcnt := cfsm.StateCount(), lrgen.g.SymbolCount()
	tracer().Infof("%s tables of size %d x %d", lrgen.variant, statescnt, symcnt)
	lrgen.tables = &Tables{
		Variant:   lrgen.variant,
		g:         lrgen.g,
		cfsm:      cfsm,
		action:    sparse.NewIntMatrix(statescnt, symcnt, sparse.DefaultNullValue),
		gototable: sparse.NewIntMatrix(statescnt, symcnt, sparse.DefaultNullValue),
	}
	lrgen.buildTables()
	return lrgen.tables
}

// Tables returns the tables built by CreateTables(), or nil.
func (lrgen *TableGenerator) Tables() *Tables {
	if lrgen.tables == nil {
		tracer().Errorf("tables not yet initialized")
	}
	return lrgen.tables
}

// HasConflicts is true if the tables contain conflicting entries.
// Clients have to call CreateTables() first.
func (lrgen *TableGenerator) HasConflicts() bool {
	return lrgen.tables != nil && lrgen.tables.HasConflicts()
}

// Conflicts returns the conflicts found by CreateTables().
func (lrgen *TableGenerator) Conflicts() []Conflict {
	if lrgen.tables == nil {
		return nil
	}
	return lrgen.tables.conflicts
}

// For building the tables we iterate over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state:
//
// - the completed start item produces an accept entry at the end marker
//
// - other completed items produce reduce entries: for LR(0) in every
//   terminal column, for SLR(1) for each terminal from FOLLOW(LHS), for LR(1)
//   at the item's lookahead
//
// - an item with a terminal after the dot produces a shift entry
//
// - an item with a non-terminal after the dot produces a GOTO entry
func (lrgen *TableGenerator) buildTables() {
	tables := lrgen.tables
	for _, state := range tables.cfsm.States() {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		for _, item := range state.Items() {
			A := item.PeekSymbol()
			switch {
			case A == nil && item.rule.Serial == 0:
				lrgen.writeAction(state.ID, lrgen.g.eof, Action{Kind: Accept})
			case A == nil:
				reduce := Action{Kind: Reduce, Rule: item.rule}
				for _, la := range lrgen.reduceLookaheads(item) {
					lrgen.writeAction(state.ID, la, reduce)
				}
			case A.IsTerminal():
				target, ok := tables.cfsm.Transition(state.ID, A)
				if !ok {
					panic(fmt.Sprintf("CFSM has no transition for state %d on %s", state.ID, A))
				}
				lrgen.writeAction(state.ID, A, Action{Kind: Shift, Target: target})
			default:
				target, ok := tables.cfsm.Transition(state.ID, A)
				if !ok {
					panic(fmt.Sprintf("CFSM has no transition for state %d on %s", state.ID, A))
				}
				tables.gototable.Set(state.ID, A.Serial, int32(target))
			}
		}
	}
	if len(tables.conflicts) > 0 {
		tracer().Infof("%s tables for %s have %d conflicts", lrgen.variant, lrgen.g.Name,
			len(tables.conflicts))
	}
}

func (lrgen *TableGenerator) reduceLookaheads(item Item) []*Symbol {
	switch lrgen.variant {
	case LR1:
		return []*Symbol{item.la}
	case SLR1:
		return lrgen.ga.symbolsOf(lrgen.ga.follow[item.rule.LHS.Serial].AppendTo(nil))
	}
	las := make([]*Symbol, 0, len(lrgen.g.terminals)+1)
	las = append(las, lrgen.g.terminals...)
	return append(las, lrgen.g.eof)
}

// writeAction places an action into a table cell. Writing an action already
// present is a no-op. Writing a different one records a conflict and keeps the
// incoming action as the cell's second value.
func (lrgen *TableGenerator) writeAction(state int, A *Symbol, action Action) {
	tables := lrgen.tables
	v := action.encode()
	a, b := tables.action.Values(state, A.Serial)
	if a == tables.action.NullValue() {
		tracer().Debugf("    action(%d, %s) = %s", state, A, action)
		tables.action.Set(state, A.Serial, v)
		return
	}
	if a == v || b == v {
		return
	}
	existing := decodeAction(lrgen.g, a)
	kind := ReduceReduce
	if existing.Kind == Shift || action.Kind == Shift {
		kind = ShiftReduce
	}
	c := Conflict{State: state, Symbol: A, Kind: kind, Existing: existing, Incoming: action}
	tracer().Infof("%s", c)
	tables.conflicts = append(tables.conflicts, c)
	tables.action.Add(state, A.Serial, v)
}
