package lr

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCFSMLR0(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g := makeAGrammar(t)
	lrgen := NewTableGenerator(Analysis(g))
	cfsm := lrgen.CFSM()
	if cfsm.StateCount() != 6 {
		t.Errorf("Expected 6 states, have %d", cfsm.StateCount())
	}
	if len(cfsm.Transitions()) != 7 {
		t.Errorf("Expected 7 transitions, have %d: %v", len(cfsm.Transitions()), cfsm.Transitions())
	}
	if cfsm.S0 != cfsm.State(0) || cfsm.S0.ItemSet().Size() != 4 {
		t.Errorf("Expected state 0 to be the 4-item start state")
	}
	accepting := 0
	for _, s := range cfsm.States() {
		if s.Accept {
			accepting++
		}
	}
	if accepting != 1 {
		t.Errorf("Expected exactly 1 accepting state, have %d", accepting)
	}
	s1, ok := cfsm.Transition(0, g.Start())
	if !ok || !cfsm.State(s1).Accept {
		t.Errorf("Expected transition 0 --S--> accepting state")
	}
	// loop on a
	s3, _ := cfsm.Transition(0, g.SymbolByName("a"))
	if s, ok := cfsm.Transition(s3, g.SymbolByName("a")); !ok || s != s3 {
		t.Errorf("Expected state %d to loop on a", s3)
	}
	if _, ok := cfsm.Transition(s1, g.SymbolByName("a")); ok {
		t.Errorf("Expected accepting state to have no transitions")
	}
}

func TestCFSMUniqueStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	for _, lr1 := range []bool{false, true} {
		cfsm := buildCFSM(Analysis(makeExprGrammar(t)), lr1)
		states := cfsm.States()
		for i := range states {
			for j := i + 1; j < len(states); j++ {
				if states[i].ItemSet().Equals(states[j].ItemSet()) {
					t.Errorf("States %d and %d have equal item sets", i, j)
				}
			}
		}
		seen := make(map[transitionKey]bool)
		for _, e := range cfsm.Transitions() {
			k := transitionKey{e.From, e.Label.Serial}
			if seen[k] {
				t.Errorf("Duplicate edge %v", e)
			}
			seen[k] = true
			if e.Label == cfsm.Grammar().EOF() {
				t.Errorf("Unexpected edge on end marker: %v", e)
			}
		}
	}
}

func TestCFSMDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	for _, lr1 := range []bool{false, true} {
		c1 := buildCFSM(Analysis(makeDanglingElse(t)), lr1)
		c2 := buildCFSM(Analysis(makeDanglingElse(t)), lr1)
		if c1.StateCount() != c2.StateCount() {
			t.Fatalf("Expected equal state counts, have %d and %d", c1.StateCount(), c2.StateCount())
		}
		for n := 0; n < c1.StateCount(); n++ {
			if c1.State(n).ItemSet().String() != c2.State(n).ItemSet().String() {
				t.Errorf("Expected state %d to be identical for both builds", n)
			}
		}
		if !reflect.DeepEqual(edgeStrings(c1), edgeStrings(c2)) {
			t.Errorf("Expected identical transitions for both builds")
		}
	}
}

func TestCFSMLR1Larger(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	ga := Analysis(makeExprGrammar(t))
	c0 := buildCFSM(ga, false)
	c1 := buildCFSM(ga, true)
	t.Logf("LR(0): %d states, LR(1): %d states", c0.StateCount(), c1.StateCount())
	if c1.StateCount() <= c0.StateCount() {
		t.Errorf("Expected canonical LR(1) collection to be larger than LR(0) collection")
	}
	for _, s := range c1.States() {
		for _, i := range s.Items() {
			if i.Lookahead() == nil {
				t.Fatalf("Expected LR(1) item, have %v", i)
			}
		}
	}
}

func TestCFSMStateCountsCC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("CC")
	b.LHS("S").RHS("C", "C")
	b.LHS("C").RHS("c", "C")
	b.LHS("C").RHS("d")
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga := Analysis(g)
	if n := buildCFSM(ga, false).StateCount(); n != 7 {
		t.Errorf("Expected 7 LR(0) states, have %d", n)
	}
	if n := buildCFSM(ga, true).StateCount(); n != 10 {
		t.Errorf("Expected 10 LR(1) states, have %d", n)
	}
}

func edgeStrings(c *CFSM) []string {
	var s []string
	for _, e := range c.Transitions() {
		s = append(s, e.String())
	}
	return s
}
