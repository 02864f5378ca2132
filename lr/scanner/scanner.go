/*
Package scanner defines an interface for scanners to be used with parsers of package lr.

A default scanner implementation is provided, splitting input at white space,
with every field being a token of its own kind. A lexmachine-backed scanner lives
in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.scanner")
}

// Tokenizer is a scanner interface. After the input is exhausted, a tokenizer
// returns tokens of kind lrkit.EOF.
type Tokenizer interface {
	NextToken() lrkit.Token
	SetErrorHandler(func(error))
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// field tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   string
	lexeme string
	span   lrkit.Span
}

var _ lrkit.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(kind string, lexeme string, span lrkit.Span) DefaultToken {
	return DefaultToken{
		kind:   kind,
		lexeme: lexeme,
		span:   span,
	}
}

// EOFToken creates an end-of-input token at position pos.
func EOFToken(pos uint64) DefaultToken {
	return MakeDefaultToken(lrkit.EOF, "", lrkit.Span{pos, pos})
}

func (t DefaultToken) Kind() string {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lrkit.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == t.lexeme {
		return t.kind
	}
	return t.kind + "(" + t.lexeme + ")"
}

// --- Slice tokenizer -------------------------------------------------------

// SliceTokenizer hands out tokens from a pre-computed list. Tokens of kind
// lrkit.EOF within the list are reported as errors and skipped; the end marker
// is produced only after the last token.
type SliceTokenizer struct {
	tokens []lrkit.Token
	pos    int
	end    uint64
	errh   func(error)
}

var _ Tokenizer = (*SliceTokenizer)(nil)

// NewSliceTokenizer creates a tokenizer for a list of tokens.
func NewSliceTokenizer(tokens []lrkit.Token) *SliceTokenizer {
	var end uint64
	if len(tokens) > 0 {
		end = tokens[len(tokens)-1].Span().To()
	}
	return &SliceTokenizer{tokens: tokens, end: end, errh: logError}
}

// FieldsTokenizer splits input at white space. Every field is a token, with
// the field's text as both its kind and lexeme, i.e. fields are raw terminal
// names:
//
//     FieldsTokenizer("a a b")   // tokens a, a, b
//
// A field spelled like the end marker is reported as a *ReservedKindError.
//
func FieldsTokenizer(input string) *SliceTokenizer {
	var tokens []lrkit.Token
	start := -1
	for i, r := range input {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, fieldToken(input, start, i))
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, fieldToken(input, start, len(input)))
	}
	t := NewSliceTokenizer(tokens)
	t.end = uint64(len(input))
	return t
}

func fieldToken(input string, from, to int) lrkit.Token {
	f := input[from:to]
	return MakeDefaultToken(f, f, lrkit.Span{uint64(from), uint64(to)})
}

// StringsTokenizer creates tokens from a list of terminal names. Spans are
// token indices.
func StringsTokenizer(terminals []string) *SliceTokenizer {
	tokens := make([]lrkit.Token, len(terminals))
	for n, t := range terminals {
		tokens[n] = MakeDefaultToken(t, t, lrkit.Span{uint64(n), uint64(n + 1)})
	}
	return NewSliceTokenizer(tokens)
}

// ReservedKindError is reported for input tokens of the reserved kind lrkit.EOF.
type ReservedKindError struct {
	Pos  int // position in the token list
	Span lrkit.Span
}

func (e *ReservedKindError) Error() string {
	return fmt.Sprintf("token #%d at %v: %s is reserved for the end of input", e.Pos, e.Span, lrkit.EOF)
}

// NextToken is part of the Tokenizer interface.
func (t *SliceTokenizer) NextToken() lrkit.Token {
	for t.pos < len(t.tokens) && t.tokens[t.pos].Kind() == lrkit.EOF {
		t.errh(&ReservedKindError{Pos: t.pos, Span: t.tokens[t.pos].Span()})
		t.pos++
	}
	if t.pos >= len(t.tokens) {
		tracer().Debugf("SliceTokenizer reached end of input")
		return EOFToken(t.end)
	}
	token := t.tokens[t.pos]
	t.pos++
	return token
}

// SetErrorHandler is part of the Tokenizer interface. A nil handler restores
// the default, which traces errors.
func (t *SliceTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	t.errh = h
}

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// Len returns the number of tokens, excluding the end marker.
func (t *SliceTokenizer) Len() int {
	return len(t.tokens)
}

// Lexeme is a helper function to receive a printable string from a token.
func Lexeme(token lrkit.Token) string {
	if token == nil {
		return "<nil>"
	}
	if token.Kind() == lrkit.EOF {
		return lrkit.EOF
	}
	if l := token.Lexeme(); utf8.ValidString(l) && l != "" {
		return l
	}
	return token.Kind()
}
