package lr

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int      // serial ID of this state, in order of discovery
	items  *ItemSet // configuration items within this state
	Accept bool     // does this state contain the completed start rule?
}

// Items returns the items of a state in canonical order.
func (s *CFSMState) Items() []Item {
	return s.items.Items()
}

// ItemSet returns the item set of a state. Clients must not modify it.
func (s *CFSMState) ItemSet() *ItemSet {
	return s.items
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	s.items.Dump()
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

func (s *CFSMState) containsCompletedStartRule() bool {
	for _, i := range s.items.Items() {
		if i.rule.Serial == 0 && i.Completed() {
			return true
		}
	}
	return false
}

// Transition is an edge of the CFSM, labeled with a grammar symbol.
type Transition struct {
	From  int
	Label *Symbol
	To    int
}

func (t Transition) String() string {
	return fmt.Sprintf("%d --%s--> %d", t.From, t.Label, t.To)
}

// transitionKey identifies the single edge for a (state, symbol) pair.
type transitionKey struct {
	state  int
	symbol int
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// canonical collection of item sets together with the goto transitions between
// them. Will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes, or even to
// compute your own tables from it.
type CFSM struct {
	g           *Grammar
	lr1         bool                    // items carry lookaheads
	states      *arraylist.List         // all the states, in order of discovery
	edges       *arraylist.List         // all the edges, in order of discovery
	byItems     map[string][]*CFSMState // states by item set fingerprint
	transitions map[transitionKey]int
	S0          *CFSMState // start state
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar, lr1 bool) *CFSM {
	return &CFSM{
		g:           g,
		lr1:         lr1,
		states:      arraylist.New(),
		edges:       arraylist.New(),
		byItems:     make(map[string][]*CFSMState),
		transitions: make(map[transitionKey]int),
	}
}

// Grammar returns the grammar this CFSM has been built for.
func (c *CFSM) Grammar() *Grammar {
	return c.g
}

// StateCount returns the number of states.
func (c *CFSM) StateCount() int {
	return c.states.Size()
}

// State returns state #id, or nil.
func (c *CFSM) State(id int) *CFSMState {
	s, ok := c.states.Get(id)
	if !ok {
		return nil
	}
	return s.(*CFSMState)
}

// States returns all states in order of discovery.
func (c *CFSM) States() []*CFSMState {
	states := make([]*CFSMState, 0, c.states.Size())
	it := c.states.Iterator()
	for it.Next() {
		states = append(states, it.Value().(*CFSMState))
	}
	return states
}

// Transitions returns all edges in order of discovery.
func (c *CFSM) Transitions() []Transition {
	edges := make([]Transition, 0, c.edges.Size())
	it := c.edges.Iterator()
	for it.Next() {
		edges = append(edges, it.Value().(Transition))
	}
	return edges
}

// Transition returns the target state for a (state, symbol) pair.
func (c *CFSM) Transition(state int, A *Symbol) (int, bool) {
	to, ok := c.transitions[transitionKey{state, A.Serial}]
	return to, ok
}

// Find a CFSM state by the contained item set. The fingerprint narrows the
// search; item sets are compared structurally.
func (c *CFSM) findStateByItems(iset *ItemSet, fp string) *CFSMState {
	for _, s := range c.byItems[fp] {
		if s.items.Equals(iset) {
			return s
		}
	}
	return nil
}

// Add a state to the CFSM, or return the existing one with an equal item set.
// The flag is true if a new state has been created.
func (c *CFSM) addState(iset *ItemSet) (*CFSMState, bool) {
	fp := iset.fingerprint()
	if s := c.findStateByItems(iset, fp); s != nil {
		return s, false
	}
	s := &CFSMState{ID: c.states.Size(), items: iset}
	s.Accept = s.containsCompletedStartRule()
	c.states.Add(s)
	c.byItems[fp] = append(c.byItems[fp], s)
	return s, true
}

// addEdge records the edge for (from, label), if not yet present.
func (c *CFSM) addEdge(from, to *CFSMState, label *Symbol) bool {
	key := transitionKey{from.ID, label.Serial}
	if _, exists := c.transitions[key]; exists {
		return false
	}
	c.transitions[key] = to.ID
	c.edges.Add(Transition{From: from.ID, Label: label, To: to.ID})
	return true
}

// buildCFSM constructs the characteristic finite state machine for a grammar.
// State 0 is the closure of the start item. We walk the growing list of states
// in order of discovery and compute the goto-set for every state and every
// grammar symbol. A non-empty goto-set is either a new state, appended to the
// list, or an already existing one. As goto is deterministic, each state has
// to be expanded once; the walk ends when it reaches the end of the list.
func buildCFSM(ga *LRAnalysis, lr1 bool) *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	G := ga.g
	cfsm := emptyCFSM(G, lr1)
	var la *Symbol
	if lr1 {
		la = G.eof
	}
	closure0 := ga.Closure(NewItemSet(StartItem(G, la)))
	cfsm.S0, _ = cfsm.addState(closure0)
	cfsm.S0.Dump()
	for n := 0; n < cfsm.states.Size(); n++ {
		s := cfsm.State(n)
		G.EachSymbol(func(A *Symbol) {
			gotoset := ga.Goto(s.items, A)
			if gotoset.Empty() {
				return
			}
			snew, isNew := cfsm.addState(gotoset)
			if isNew {
				tracer().Debugf("new state %d from %d on %s", snew.ID, s.ID, A)
				snew.Dump()
			}
			cfsm.addEdge(s, snew, A)
		})
	}
	tracer().Infof("CFSM for %s has %d states and %d edges", G.Name,
		cfsm.states.Size(), cfsm.edges.Size())
	return cfsm
}
