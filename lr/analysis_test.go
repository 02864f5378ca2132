package lr

import (
	"reflect"
	"testing"
	"time"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/tools/container/intsets"
)

func TestFirstFollowNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").RHS("A", "a") // S  ➞  A a
	b.LHS("A").RHS("B", "D") // A  ➞  B D
	b.LHS("B").RHS("b")      // B  ➞  b
	b.LHS("B").Epsilon()     // B  ➞
	b.LHS("D").RHS("d")      // D  ➞  d
	b.LHS("D").Epsilon()     // D  ➞
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga := Analysis(g)
	sym := g.SymbolByName
	checkNames(t, "FIRST(S)", ga.FirstNames(sym("S")), []string{"a", "b", "d"})
	checkNames(t, "FIRST(A)", ga.FirstNames(sym("A")), []string{"b", "d"})
	checkNames(t, "FIRST(B)", ga.FirstNames(sym("B")), []string{"b"})
	checkNames(t, "FIRST(a)", ga.FirstNames(sym("a")), []string{"a"})
	checkNames(t, "FOLLOW(S)", ga.FollowNames(sym("S")), []string{lrkit.EOF})
	checkNames(t, "FOLLOW(A)", ga.FollowNames(sym("A")), []string{"a"})
	checkNames(t, "FOLLOW(B)", ga.FollowNames(sym("B")), []string{"a", "d"})
	checkNames(t, "FOLLOW(D)", ga.FollowNames(sym("D")), []string{"a"})
	for name, nullable := range map[string]bool{"S": false, "A": true, "B": true, "D": true, "a": false} {
		if ga.Nullable(sym(name)) != nullable {
			t.Errorf("Expected nullable(%s) = %v", name, nullable)
		}
	}
	if _, nullable := ga.FirstOfString(nil); !nullable {
		t.Errorf("Expected the empty string to be nullable")
	}
}

func TestFirstLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	ga := Analysis(g)
	for _, N := range []string{"E", "T", "F"} {
		checkNames(t, "FIRST("+N+")", ga.FirstNames(g.SymbolByName(N)),
			[]string{"LPAREN", "NUMBER", "ID"})
	}
	checkNames(t, "FOLLOW(E)", ga.FollowNames(g.SymbolByName("E")),
		[]string{"PLUS", "RPAREN", lrkit.EOF})
	checkNames(t, "FOLLOW(F)", ga.FollowNames(g.SymbolByName("F")),
		[]string{"PLUS", "TIMES", "RPAREN", lrkit.EOF})
}

func TestFirstMutualRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Mutual")
	b.LHS("A").RHS("B", "x")
	b.LHS("A").RHS("y")
	b.LHS("B").RHS("A", "z")
	b.LHS("B").RHS("w")
	b.LHS("C").RHS("C") // C ➞ C derives nothing
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga := Analysis(g)
	checkNames(t, "FIRST(A)", ga.FirstNames(g.SymbolByName("A")), []string{"y", "w"})
	checkNames(t, "FIRST(B)", ga.FirstNames(g.SymbolByName("B")), []string{"y", "w"})
	checkNames(t, "FIRST(C)", ga.FirstNames(g.SymbolByName("C")), []string{})
	if first := ga.First(g.SymbolByName("A")); first.Len() != 2 {
		t.Errorf("Expected |FIRST(A)| = 2, is %d", first.Len())
	}
}

func TestAnalysisTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	// FIRST(A) = {a, b} is a proper superset of FIRST(a) = {a}
	for _, x := range []struct {
		rules map[string][][]string
		first []string
	}{
		{map[string][][]string{"S": {{"A"}}, "A": {{"a", "A"}, {"b"}}}, []string{"a", "b"}},
		{map[string][][]string{"S": {{"C", "C"}}, "C": {{"c", "C"}, {"d"}}}, []string{"c", "d"}},
	} {
		g, err := FromRules("G", "S", x.rules)
		if err != nil {
			t.Fatal(err)
		}
		done := make(chan *LRAnalysis, 1)
		go func() {
			done <- Analysis(g)
		}()
		select {
		case ga := <-done:
			checkNames(t, "FIRST(S)", ga.FirstNames(g.Start()), x.first)
		case <-time.After(10 * time.Second):
			t.Fatalf("Analysis of %v did not terminate", x.rules)
		}
	}
}

func TestUnionGrows(t *testing.T) {
	var s, x intsets.Sparse
	s.Insert(1)
	s.Insert(2)
	x.Insert(1)
	if unionGrows(&s, &x) {
		t.Errorf("Expected union with a subset not to grow the set")
	}
	x.Insert(3)
	if !unionGrows(&s, &x) || s.Len() != 3 {
		t.Errorf("Expected union to grow the set to 3 elements, is %v", s.String())
	}
}

// checkNames compares sets of symbol names, irrespective of order.
func checkNames(t *testing.T, what string, have, want []string) {
	t.Helper()
	h := make(map[string]bool)
	for _, n := range have {
		h[n] = true
	}
	w := make(map[string]bool)
	for _, n := range want {
		w[n] = true
	}
	if !reflect.DeepEqual(h, w) {
		t.Errorf("Expected %s = %v, is %v", what, want, have)
	}
}
