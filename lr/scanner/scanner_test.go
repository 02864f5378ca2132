package scanner

import (
	"testing"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"a",
	"a a b",
	"  a\tb  ",
	"",
	"id + id * id",
}

var tokenCounts = []int{1, 3, 2, 0, 5}

func TestFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		scanner := FieldsTokenizer(input)
		token := scanner.NextToken()
		count := 0
		for token.Kind() != lrkit.EOF {
			t.Logf(" %4s | %15s | @%5d", token.Kind(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if token.Span().From() != uint64(len(input)) {
			t.Errorf("Expected end marker at %d, is at %d", len(input), token.Span().From())
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestFieldSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	scanner := FieldsTokenizer(" ab  c")
	token := scanner.NextToken()
	if token.Kind() != "ab" || token.Span() != (lrkit.Span{1, 3}) {
		t.Errorf("Expected token 'ab' at (1…3), got %q at %v", token.Kind(), token.Span())
	}
	token = scanner.NextToken()
	if token.Kind() != "c" || token.Span() != (lrkit.Span{5, 6}) {
		t.Errorf("Expected token 'c' at (5…6), got %q at %v", token.Kind(), token.Span())
	}
	for i := 0; i < 2; i++ { // end marker is repeated
		if token = scanner.NextToken(); token.Kind() != lrkit.EOF {
			t.Errorf("Expected end marker, got %q", token.Kind())
		}
	}
}

func TestStrings(t *testing.T) {
	scanner := StringsTokenizer([]string{"x", "y"})
	if scanner.Len() != 2 {
		t.Fatalf("Expected 2 tokens, have %d", scanner.Len())
	}
	if tok := scanner.NextToken(); tok.Kind() != "x" || tok.Span().From() != 0 {
		t.Errorf("Expected first token x@0, got %v", tok)
	}
	if tok := scanner.NextToken(); Lexeme(tok) != "y" {
		t.Errorf("Expected second token y, got %v", tok)
	}
	if tok := scanner.NextToken(); Lexeme(tok) != lrkit.EOF || tok.Span().From() != 2 {
		t.Errorf("Expected end marker at 2, got %v", tok)
	}
}

func TestReservedKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	var errs []error
	scanner := FieldsTokenizer("a " + lrkit.EOF + " b")
	scanner.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	var kinds []string
	for token := scanner.NextToken(); token.Kind() != lrkit.EOF; token = scanner.NextToken() {
		kinds = append(kinds, token.Kind())
	}
	if len(kinds) != 2 || kinds[0] != "a" || kinds[1] != "b" {
		t.Errorf("Expected tokens a, b; have %v", kinds)
	}
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error for the reserved kind, have %d", len(errs))
	}
	if rerr, ok := errs[0].(*ReservedKindError); !ok || rerr.Pos != 1 {
		t.Errorf("Expected ReservedKindError for token #1, have %v", errs[0])
	}
	errs = nil
	scanner = StringsTokenizer([]string{lrkit.EOF})
	scanner.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	if token := scanner.NextToken(); token.Kind() != lrkit.EOF || len(errs) != 1 {
		t.Errorf("Expected reserved kind to be reported and the end marker to follow")
	}
}
