package grammarfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func ruleStrings(g *lr.Grammar) []string {
	var rules []string
	for _, r := range g.Rules() {
		rules = append(rules, r.String())
	}
	return rules
}

func checkRules(t *testing.T, g *lr.Grammar, want []string) {
	t.Helper()
	have := ruleStrings(g)
	if len(have) != len(want) {
		t.Fatalf("Expected %d rules, have %d: %v", len(want), len(have), have)
	}
	for n := range want {
		if have[n] != want[n] {
			t.Errorf("Expected rule %d to be %q, is %q", n, want[n], have[n])
		}
	}
}

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g, err := LoadFile("testdata/a.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "A" {
		t.Errorf("Expected grammar name A, is %q", g.Name)
	}
	checkRules(t, g, []string{"S' ➞ S", "S ➞ A", "A ➞ a A", "A ➞ b"})
}

func TestLoadYAMLReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	src := `
rules:
  L:
    - "L x"
    - []
`
	g, err := LoadYAML("List", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "List" {
		t.Errorf("Expected grammar name List, is %q", g.Name)
	}
	checkRules(t, g, []string{"L' ➞ L", "L ➞ L x", "L ➞ ε"})
}

func TestLoadTOML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g, err := LoadFile("testdata/expr.toml")
	if err != nil {
		t.Fatal(err)
	}
	checkRules(t, g, []string{
		"E' ➞ E",
		"E ➞ E PLUS T", "E ➞ T",
		"T ➞ T TIMES F", "T ➞ F",
		"F ➞ LPAREN E RPAREN", "F ➞ NUMBER", "F ➞ ID",
	})
	if tables := lr.Compile(g, lr.WithVariant(lr.LR1)); tables.HasConflicts() {
		t.Errorf("Expected expression grammar to be LR(1)")
	}
}

func TestLoadEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g, err := LoadFile("testdata/dangling.ebnf")
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "dangling" {
		t.Errorf("Expected grammar to be named after file, is %q", g.Name)
	}
	checkRules(t, g, []string{"S' ➞ S", "S ➞ i E t S", "S ➞ i E t S e S", "S ➞ a", "E ➞ b"})
	if !lr.Compile(g, lr.WithVariant(lr.LR1)).HasConflicts() {
		t.Errorf("Expected dangling-else grammar to have conflicts")
	}
}

func TestLoadEBNFEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g, err := LoadFile("testdata/eps.ebnf")
	if err != nil {
		t.Fatal(err)
	}
	if !g.Rule(5).IsEps() {
		t.Errorf("Expected C = . to be an epsilon-production, is %v", g.Rule(5))
	}
	ga := lr.Analysis(g)
	if !ga.Nullable(g.SymbolByName("B")) || ga.Nullable(g.SymbolByName("A")) {
		t.Errorf("Expected B to be nullable and A not")
	}
}

func TestLoadEBNFStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	src := `E = "b" .
S = "i" E .`
	g, err := LoadEBNF("G", strings.NewReader(src), "S")
	if err != nil {
		t.Fatal(err)
	}
	if g.Start().Name != "S" {
		t.Errorf("Expected start symbol S, is %s", g.Start())
	}
}

func TestFormatErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	for _, path := range []string{
		"testdata/repetition.ebnf",
		"testdata/norules.yaml",
	} {
		_, err := LoadFile(path)
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("Expected FormatError for %s, have %v", path, err)
			continue
		}
		if ferr.File != path {
			t.Errorf("Expected error to name file %s, is %q", path, ferr.File)
		}
		t.Logf("%v", err)
	}
	if _, err := LoadTOML("bad", strings.NewReader("rules = 7")); err == nil {
		t.Errorf("Expected error for malformed TOML grammar")
	}
	if _, err := LoadFile("testdata/a.json"); err == nil {
		t.Errorf("Expected error for missing file")
	}
}

func TestLoadFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	gs, err := LoadFiles([]string{"testdata/a.yaml", "testdata/expr.toml", "testdata/dangling.ebnf"})
	if err != nil {
		t.Fatal(err)
	}
	if len(gs) != 3 {
		t.Errorf("Expected 3 grammars, have %d", len(gs))
	}
}
