/*
Package lexmach provides an adapter to use lexmachine as a scanner for LR parsers.

Lexmachine (https://github.com/timtadh/lexmachine) compiles a set of regular
expressions into a DFA. Every token definition names the terminal it stands for,
so tokens produced by an adapter are (kind, lexeme) pairs where the kind is a
terminal name of the grammar.

Clients may define their own token sets or use the pre-defined arithmetic one:

    lm, err := lexmach.ArithmeticAdapter()
    sc, err := lm.Scanner("2 + 3 * (x + 1)")
    token := sc.NextToken()   // NUMBER("2")

Characters not matched by any token definition are reported as *LexError to the
scanner's error handler.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lrkit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.scanner")
}

// TokenDef defines a token kind by a regular expression in lexmachine syntax.
type TokenDef struct {
	Kind    string // terminal name
	Pattern string
}

// ArithmeticTokens is the token set for simple arithmetic expressions.
var ArithmeticTokens = []TokenDef{
	{"NUMBER", `[0-9]+`},
	{"PLUS", `\+`},
	{"TIMES", `\*`},
	{"LPAREN", `\(`},
	{"RPAREN", `\)`},
	{"ID", `[a-zA-Z_][a-zA-Z0-9_]*`},
}

// WhiteSpace is the skip pattern for blanks and tabs.
const WhiteSpace = `( |\t)+`

// LexError is reported for input characters no token definition matches.
type LexError struct {
	Char rune
	Pos  int // byte offset within the input
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	kinds []string // token kind names, indexed by lexmachine token type
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of token
// definitions and a list of patterns for input to skip silently.
// Earlier token definitions take precedence over later ones for matches of
// equal length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(defs []TokenDef, skip ...string) (*LMAdapter, error) {
	adapter := &LMAdapter{Lexer: lexmachine.NewLexer()}
	for _, pattern := range skip {
		adapter.Lexer.Add([]byte(pattern), Skip)
	}
	for id, def := range defs {
		adapter.kinds = append(adapter.kinds, def.Kind)
		adapter.Lexer.Add([]byte(def.Pattern), MakeToken(def.Kind, id))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// ArithmeticAdapter creates an adapter for ArithmeticTokens, skipping white space.
func ArithmeticAdapter() (*LMAdapter, error) {
	return NewLMAdapter(ArithmeticTokens, WhiteSpace)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMScanner{
		scanner: s,
		input:   input,
		kinds:   lm.kinds,
		Error:   logError,
	}, nil
}

// Tokenize scans a complete input and returns its tokens, excluding the end
// marker. Tokenize stops at the first unmatched character and returns a
// *LexError for it.
func (lm *LMAdapter) Tokenize(input string) ([]lrkit.Token, error) {
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var lexerr error
	sc.SetErrorHandler(func(e error) {
		if lexerr == nil {
			lexerr = e
		}
	})
	var tokens []lrkit.Token
	for {
		token := sc.NextToken()
		if lexerr != nil {
			return tokens, lexerr
		}
		if token.Kind() == lrkit.EOF {
			return tokens, nil
		}
		tokens = append(tokens, token)
	}
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   string
	kinds   []string
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unmatched input is reported to
// the error handler and skipped.
func (lms *LMScanner) NextToken() lrkit.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.Error(lms.lexError(ui.StartTC))
			lms.scanner.TC = ui.FailTC
			if ui.FailTC <= ui.StartTC {
				lms.scanner.TC = ui.StartTC + 1
			}
		} else {
			lms.Error(err)
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(len(lms.input))
		return scanner.EOFToken(end)
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q at %d", lms.kinds[token.Type], token.Lexeme, token.TC)
	return scanner.MakeDefaultToken(
		lms.kinds[token.Type],
		string(token.Lexeme),
		lrkit.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

func (lms *LMScanner) lexError(pos int) *LexError {
	r := utf8.RuneError
	if pos < len(lms.input) {
		r, _ = utf8.DecodeRuneInString(lms.input[pos:])
	}
	return &LexError{Char: r, Pos: pos}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, name, m), nil
	}
}
