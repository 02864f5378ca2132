package lrkit

import "fmt"

// EOF is the name of the end-of-input marker. Every token stream is terminated
// by an implicit token of this kind, and the ACTION table uses it as a column.
const EOF = "#eof"

// --- A general purpose interface for tokens --------------------------------

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for a number:
//
//    Kind   = "NUMBER"    // name of the terminal this token stands for
//    Lexeme = "3141"      // lexeme how it appeared in the input stream
//    Span   = 67…71       // occured from position 67 in the input stream
//
// The kind of a token has to match the name of a terminal symbol of the grammar
// a parser has been built for.
type Token interface {
	Kind() string
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
