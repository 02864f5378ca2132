package lr

import "sync"

// Compile analyses a grammar and creates parser tables for it. It is a shortcut
// for
//
//     lrgen := NewTableGenerator(Analysis(g), opts...)
//     tables := lrgen.CreateTables()
//
func Compile(g *Grammar, opts ...Option) *Tables {
	return NewTableGenerator(Analysis(g), opts...).CreateTables()
}

// CompileAll creates parser tables for a list of grammars. Table construction
// for one grammar does not share any state with other grammars, so each grammar
// is compiled on a goroutine of its own. Tables are returned in the order of
// the grammars.
func CompileAll(grammars []*Grammar, opts ...Option) []*Tables {
	tables := make([]*Tables, len(grammars))
	var wg sync.WaitGroup
	for n, g := range grammars {
		wg.Add(1)
		go func(n int, g *Grammar) {
			defer wg.Done()
			tables[n] = Compile(g, opts...)
		}(n, g)
	}
	wg.Wait()
	return tables
}
