package lr

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"
)

// ToGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		fmt.Fprintf(bw, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.items))
	}
	for _, e := range c.Transitions() {
		fmt.Fprintf(bw, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, dotEscape(e.Label.Name))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

// forGraphviz puts every item of a state on a line of its own, within a record label.
func forGraphviz(iset *ItemSet) string {
	var lines []string
	for _, i := range iset.Items() {
		lines = append(lines, dotEscape(i.String()))
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var dotReplacer = strings.NewReplacer(`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`,
	`<`, `\<`, `>`, `\>`)

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}

// ===========================================================================

// ActionTableAsHTML exports the ACTION table in HTML-format. Conflicting cells
// show both actions.
func ActionTableAsHTML(t *Tables, w io.Writer) error {
	return htmlDocument(t, w, actionTableAsHTML)
}

// GotoTableAsHTML exports the GOTO table in HTML-format.
func GotoTableAsHTML(t *Tables, w io.Writer) error {
	return htmlDocument(t, w, gotoTableAsHTML)
}

// TablesAsHTML exports the ACTION and the GOTO table into a single HTML document.
func TablesAsHTML(t *Tables, w io.Writer) error {
	return htmlDocument(t, w, actionTableAsHTML, gotoTableAsHTML)
}

func htmlDocument(t *Tables, w io.Writer, tables ...func(*Tables, *bufio.Writer)) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<html><body>\n")
	for _, table := range tables {
		table(t, bw)
	}
	bw.WriteString("</body></html>\n")
	return bw.Flush()
}

func actionTableAsHTML(t *Tables, bw *bufio.Writer) {
	syms := append(append([]*Symbol(nil), t.g.terminals...), t.g.eof)
	tableAsHTML(t, "ACTION", syms, bw, func(state int, A *Symbol) string {
		a1, a2 := t.Actions(state, A)
		if a1.Kind == NoAction {
			return "&nbsp;"
		}
		if a2.Kind == NoAction {
			return html.EscapeString(shortAction(a1))
		}
		return html.EscapeString(shortAction(a1) + "/" + shortAction(a2))
	})
}

func gotoTableAsHTML(t *Tables, bw *bufio.Writer) {
	syms := t.g.nonterminals[1:]
	tableAsHTML(t, "GOTO", syms, bw, func(state int, N *Symbol) string {
		if target, ok := t.Goto(state, N); ok {
			return fmt.Sprintf("%d", target)
		}
		return "&nbsp;"
	})
}

func tableAsHTML(t *Tables, tname string, syms []*Symbol, bw *bufio.Writer,
	cell func(int, *Symbol) string) {
	//
	fmt.Fprintf(bw, "<p>%s %s table for %s, %d states</p>\n", t.Variant, tname,
		html.EscapeString(t.g.Name), t.StateCount())
	bw.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	bw.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range syms {
		fmt.Fprintf(bw, "<td>%s</td>", html.EscapeString(A.Name))
	}
	bw.WriteString("</tr>\n")
	for state := 0; state < t.StateCount(); state++ {
		fmt.Fprintf(bw, "<tr><td>state %d</td>\n", state)
		for _, A := range syms {
			fmt.Fprintf(bw, "<td>%s</td>\n", cell(state, A))
		}
		bw.WriteString("</tr>\n")
	}
	bw.WriteString("</table>\n")
}

// shortAction is the usual compact notation: s3, r2, acc.
func shortAction(a Action) string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("s%d", a.Target)
	case Reduce:
		return fmt.Sprintf("r%d", a.Rule.Serial)
	case Accept:
		return "acc"
	}
	return ""
}

// ShortString returns an action in compact notation, e.g. "s3" for shifting to
// state 3, "r2" for reducing rule 2 and "acc" for accept.
func (a Action) ShortString() string {
	return shortAction(a)
}
