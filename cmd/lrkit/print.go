package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/lrparse"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Success.Prefix = pterm.Prefix{
		Text:  "  OK",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
}

func printGrammar(g *lr.Grammar) {
	pterm.DefaultSection.Println("Grammar " + g.Name)
	data := [][]string{{"#", "Rule"}}
	for _, r := range g.Rules() {
		data = append(data, []string{strconv.Itoa(r.Serial), r.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printStates(cfsm *lr.CFSM) {
	pterm.DefaultSection.Println(fmt.Sprintf("%d states", cfsm.StateCount()))
	for _, s := range cfsm.States() {
		head := fmt.Sprintf("state %d", s.ID)
		if s.Accept {
			head += " (accept)"
		}
		pterm.Println(head)
		for _, i := range s.Items() {
			pterm.Println("    " + i.String())
		}
	}
	data := [][]string{{"From", "Symbol", "To"}}
	for _, e := range cfsm.Transitions() {
		data = append(data, []string{strconv.Itoa(e.From), e.Label.Name, strconv.Itoa(e.To)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printTables(tables *lr.Tables) {
	g := tables.Grammar()
	pterm.DefaultSection.Println(fmt.Sprintf("%s ACTION table", tables.Variant))
	terminals := append(append([]*lr.Symbol(nil), g.Terminals()...), g.EOF())
	header := []string{"state"}
	for _, A := range terminals {
		header = append(header, A.Name)
	}
	data := [][]string{header}
	for state := 0; state < tables.StateCount(); state++ {
		row := []string{strconv.Itoa(state)}
		for _, A := range terminals {
			row = append(row, actionCell(tables, state, A))
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	//
	pterm.DefaultSection.Println(fmt.Sprintf("%s GOTO table", tables.Variant))
	nonterminals := g.NonTerminals()[1:] // S' never is a goto target
	header = []string{"state"}
	for _, N := range nonterminals {
		header = append(header, N.Name)
	}
	data = [][]string{header}
	for state := 0; state < tables.StateCount(); state++ {
		row := []string{strconv.Itoa(state)}
		for _, N := range nonterminals {
			cell := ""
			if target, ok := tables.Goto(state, N); ok {
				cell = strconv.Itoa(target)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	printConflicts(tables)
}

func actionCell(tables *lr.Tables, state int, A *lr.Symbol) string {
	a1, a2 := tables.Actions(state, A)
	if a2.Kind != lr.NoAction {
		return a1.ShortString() + "/" + a2.ShortString()
	}
	return a1.ShortString()
}

func printConflicts(tables *lr.Tables) {
	if !tables.HasConflicts() {
		pterm.Success.Println(fmt.Sprintf("%s is %s, no conflicts", tables.Grammar().Name,
			tables.Variant))
		return
	}
	pterm.Warning.Println(fmt.Sprintf("%s has %d %s conflicts", tables.Grammar().Name,
		len(tables.Conflicts()), tables.Variant))
	for _, c := range tables.Conflicts() {
		pterm.Println("    " + c.String())
	}
}

func printVerdict(input string, result lrparse.Result) {
	if result.Accepted() {
		pterm.Success.Println(fmt.Sprintf("%q: accepted", input))
		return
	}
	pterm.Error.Println(fmt.Sprintf("%q: rejected: %v", input, result.Error))
}

func traceActions(actions []lr.Action) {
	short := make([]string, len(actions))
	for n, a := range actions {
		short[n] = a.ShortString()
	}
	tracer().Infof("actions: %s", strings.Join(short, " "))
}
