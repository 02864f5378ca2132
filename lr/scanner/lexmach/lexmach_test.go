package lexmach

import (
	"errors"
	"testing"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"1",
	"1+12",
	"x * (y + 42)",
	"  alpha_1\t* 7 ",
	"",
}

var tokenCounts = []int{1, 3, 7, 3, 0}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	LM, err := ArithmeticAdapter()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		token := sc.NextToken()
		count := 0
		for token.Kind() != lrkit.EOF {
			t.Logf(" %6s | %15s | @%5d", token.Kind(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestTokenKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	LM, err := ArithmeticAdapter()
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := LM.Tokenize("(a+10)*b")
	if err != nil {
		t.Fatal(err)
	}
	kinds := []string{"LPAREN", "ID", "PLUS", "NUMBER", "RPAREN", "TIMES", "ID"}
	lexemes := []string{"(", "a", "+", "10", ")", "*", "b"}
	if len(tokens) != len(kinds) {
		t.Fatalf("Expected %d tokens, have %d", len(kinds), len(tokens))
	}
	for n, token := range tokens {
		if token.Kind() != kinds[n] || token.Lexeme() != lexemes[n] {
			t.Errorf("Expected token #%d to be %s(%s), is %s(%s)", n, kinds[n], lexemes[n],
				token.Kind(), token.Lexeme())
		}
	}
	if sp := tokens[3].Span(); sp.From() != 3 || sp.To() != 5 {
		t.Errorf("Expected NUMBER to span (3…5), spans %v", sp)
	}
}

func TestMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	LM, err := ArithmeticAdapter()
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := LM.Tokenize("2 $ 3")
	var lexerr *LexError
	if !errors.As(err, &lexerr) {
		t.Fatalf("Expected a LexError, got %v", err)
	}
	if lexerr.Char != '$' || lexerr.Pos != 2 {
		t.Errorf("Expected error for '$' at 2, got %v", lexerr)
	}
	if len(tokens) != 1 {
		t.Errorf("Expected 1 token before the error, have %d", len(tokens))
	}
}

func TestSkipAfterMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	LM, err := ArithmeticAdapter()
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("1 ? 2")
	if err != nil {
		t.Fatal(err)
	}
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	count := 0
	for token := sc.NextToken(); token.Kind() != lrkit.EOF; token = sc.NextToken() {
		count++
	}
	if count != 2 || len(errs) != 1 {
		t.Errorf("Expected 2 tokens and 1 error, have %d tokens and %d errors", count, len(errs))
	}
}
