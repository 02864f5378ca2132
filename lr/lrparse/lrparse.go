/*
Package lrparse provides a table-driven LR parser. Clients have to use the tools
of package lr to prepare the necessary parse tables. The parser utilizes these
tables to recognize input, provided through a scanner interface.

The parser is a deterministic pushdown automaton over a stack of state IDs. It
works with tables of every variant package lr is able to construct (LR(0),
SLR(1), LR(1)). For tables with conflicts, the parser follows the first action
of an ambiguous table cell.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("G")
	b.LHS("S").Sym("A").End()       // S ➞ A
	b.LHS("A").RHS("a", "A")        // A ➞ a A
	b.LHS("A").RHS("b")             // A ➞ b
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	tables := lr.Compile(g, lr.WithVariant(lr.LR0))
	if tables.HasConflicts() { ... }

Finally parse some input:

	p := lrparse.NewParser(tables)
	result, err := p.Parse(scanner.FieldsTokenizer("a a b"))
	if result.Accepted() { ... }

There is no error recovery: the parser stops at the first input token for which
the ACTION table has no entry, and reports the position and the stack.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lrparse

import (
	"fmt"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.lr")
}

// Outcome is the verdict of a parse.
type Outcome int8

// Parse outcomes.
const (
	Rejected Outcome = iota
	Accepted
)

func (o Outcome) String() string {
	if o == Accepted {
		return "Accepted"
	}
	return "Rejected"
}

// SyntaxError describes where a parse has been rejected: the position of the
// offending token in the token stream, the token itself and the stack of
// states at the time of rejection (bottom first). Consumed is the input span
// covered by the tokens shifted before the error; it is null if no token has
// been shifted.
type SyntaxError struct {
	Pos      int
	Token    lrkit.Token
	Stack    []int
	Consumed lrkit.Span
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at token #%d %q %v, stack = %v", e.Pos,
		scanner.Lexeme(e.Token), e.Token.Span(), e.Stack)
}

// Result is the result of a parse. For rejected input, Error tells where the
// parser got stuck. Actions is the sequence of shift and reduce actions the
// parser performed (if recording is enabled).
type Result struct {
	Outcome Outcome
	Actions []lr.Action
	Error   *SyntaxError
}

// Accepted is a shortcut for r.Outcome == Accepted.
func (r Result) Accepted() bool {
	return r.Outcome == Accepted
}

func (r Result) String() string {
	if r.Error != nil {
		return fmt.Sprintf("%s: %v", r.Outcome, r.Error)
	}
	return r.Outcome.String()
}

// Parser is a table-driven LR parser. Create and initialize one with
// lrparse.NewParser(...). A parser may be used for more than one parse, but
// not for concurrent ones.
type Parser struct {
	tables *lr.Tables
	stack  []int // stack of state IDs
	record bool
}

// Option configures a parser.
type Option func(*Parser)

// RecordActions sets or clears recording of shift/reduce actions. Recording is
// on by default.
func RecordActions(b bool) Option {
	return func(p *Parser) {
		p.record = b
	}
}

// NewParser creates a parser for a set of tables.
func NewParser(tables *lr.Tables, opts ...Option) *Parser {
	p := &Parser{
		tables: tables,
		stack:  make([]int, 0, 512),
		record: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseString parses a string of white space separated terminal names.
func (p *Parser) ParseString(input string) (Result, error) {
	return p.Parse(scanner.FieldsTokenizer(input))
}

// ParseStrings parses a sequence of terminal names.
func (p *Parser) ParseStrings(terminals []string) (Result, error) {
	return p.Parse(scanner.StringsTokenizer(terminals))
}

// Parse starts a new parse, reading tokens from a scanner.
//
// Rejection of the input is not an error; it is reported by the result.
// An error is returned if the parser has not been initialized or if the scanner
// reported an error.
func (p *Parser) Parse(scan scanner.Tokenizer) (Result, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.tables == nil {
		tracer().Errorf("parser not initialized")
		return Result{}, fmt.Errorf("parser not initialized")
	}
	var scanerr error
	scan.SetErrorHandler(func(e error) {
		if scanerr == nil {
			scanerr = e
		}
	})
	g := p.tables.Grammar()
	result := Result{}
	p.stack = append(p.stack[:0], 0) // push S0
	token := scan.NextToken()
	pos := 0
	var consumed lrkit.Span
	for {
		if scanerr != nil {
			return result, fmt.Errorf("scanner error at token #%d: %w", pos, scanerr)
		}
		state := p.stack[len(p.stack)-1] // TOS
		A := g.SymbolByName(token.Kind())
		action := p.tables.Action(state, A)
		tracer().Debugf("action(%d, %s) = %s", state, scanner.Lexeme(token), action)
		switch action.Kind {
		case lr.Accept:
			result.Outcome = Accepted
			return result, nil
		case lr.Shift:
			p.stack = append(p.stack, action.Target)
			consumed = consumed.Extend(token.Span())
			token = scan.NextToken()
			pos++
		case lr.Reduce:
			if !p.reduce(action.Rule) {
				result.Error = p.syntaxError(pos, token, consumed)
				return result, nil
			}
		default:
			result.Error = p.syntaxError(pos, token, consumed)
			tracer().Infof("%v", result.Error)
			return result, nil
		}
		if p.record {
			result.Actions = append(result.Actions, action)
		}
	}
}

// reduce performs a reduce action for a rule
//
//    LHS ➞ X1 ... Xn   (with X being terminals or non-terminals)
//
// by popping n states from the stack and pushing GOTO(TOS, LHS).
func (p *Parser) reduce(rule *lr.Rule) bool {
	tracer().Debugf("reduce %v", rule)
	next, ok := popAndGoto(p.tables, p.stack, rule)
	if !ok {
		return false
	}
	p.stack = next
	return true
}

func popAndGoto(tables *lr.Tables, stack []int, rule *lr.Rule) ([]int, bool) {
	if rule.Len() >= len(stack) {
		return stack, false
	}
	stack = stack[:len(stack)-rule.Len()]
	target, ok := tables.Goto(stack[len(stack)-1], rule.LHS)
	if !ok {
		return stack, false
	}
	return append(stack, target), true
}

func (p *Parser) syntaxError(pos int, token lrkit.Token, consumed lrkit.Span) *SyntaxError {
	return &SyntaxError{
		Pos:      pos,
		Token:    token,
		Stack:    append([]int(nil), p.stack...),
		Consumed: consumed,
	}
}

// Replay applies a recorded sequence of shift and reduce actions to a fresh
// stack [0], and returns the resulting stack together with the number of
// tokens shifted. For the actions of an accepted parse, the stack is
// [0, GOTO(0, S)] and the cursor is the length of the input.
func Replay(tables *lr.Tables, actions []lr.Action) ([]int, int, error) {
	stack := []int{0}
	cursor := 0
	var ok bool
	for n, action := range actions {
		switch action.Kind {
		case lr.Shift:
			stack = append(stack, action.Target)
			cursor++
		case lr.Reduce:
			if stack, ok = popAndGoto(tables, stack, action.Rule); !ok {
				return stack, cursor, fmt.Errorf("action #%d (%s) not applicable to stack %v",
					n, action, stack)
			}
		default:
			return stack, cursor, fmt.Errorf("action #%d (%s) cannot be replayed", n, action)
		}
	}
	return stack, cursor, nil
}
