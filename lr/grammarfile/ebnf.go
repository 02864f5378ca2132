package grammarfile

import (
	"io"
	"sort"

	"github.com/npillmayer/lrkit/lr"
	"golang.org/x/exp/ebnf"
)

// LoadEBNF reads a grammar in EBNF notation. If start is empty, the first
// production of the file defines the start symbol.
func LoadEBNF(name string, r io.Reader, start string) (*lr.Grammar, error) {
	return loadEBNF(name, name, r, start)
}

func loadEBNF(name, file string, r io.Reader, start string) (*lr.Grammar, error) {
	eg, err := ebnf.Parse(file, r)
	if err != nil {
		return nil, formatError(file, err, "cannot parse EBNF")
	}
	prods := make([]*ebnf.Production, 0, len(eg))
	for _, p := range eg {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Pos().Offset < prods[j].Pos().Offset
	})
	rl := &ruleList{name: name, start: start}
	for _, p := range prods {
		alts, err := ebnfAlternatives(file, p)
		if err != nil {
			return nil, err
		}
		for _, rhs := range alts {
			rl.add(p.Name.String, rhs)
		}
	}
	return rl.grammar(file)
}

func ebnfAlternatives(file string, p *ebnf.Production) ([][]string, error) {
	var alts []ebnf.Expression
	switch x := p.Expr.(type) {
	case nil:
		return [][]string{{}}, nil
	case ebnf.Alternative:
		alts = x
	default:
		alts = []ebnf.Expression{x}
	}
	rhss := make([][]string, 0, len(alts))
	for _, alt := range alts {
		rhs, err := ebnfSequence(file, p.Name.String, alt)
		if err != nil {
			return nil, err
		}
		rhss = append(rhss, rhs)
	}
	return rhss, nil
}

func ebnfSequence(file string, lhs string, x ebnf.Expression) ([]string, error) {
	var seq ebnf.Sequence
	switch s := x.(type) {
	case ebnf.Sequence:
		seq = s
	default:
		seq = ebnf.Sequence{s}
	}
	rhs := make([]string, 0, len(seq))
	for _, sym := range seq {
		switch s := sym.(type) {
		case *ebnf.Name:
			rhs = append(rhs, s.String)
		case *ebnf.Token:
			rhs = append(rhs, s.String)
		default:
			return nil, formatError(file, nil, "%s: production for %s uses %s, which is not supported",
				sym.Pos(), lhs, ebnfKind(sym))
		}
	}
	return rhs, nil
}

func ebnfKind(x ebnf.Expression) string {
	switch x.(type) {
	case *ebnf.Group:
		return "a group"
	case *ebnf.Option:
		return "an option"
	case *ebnf.Repetition:
		return "a repetition"
	case *ebnf.Range:
		return "a range"
	case ebnf.Alternative:
		return "a nested alternative"
	}
	return "an unknown expression"
}
