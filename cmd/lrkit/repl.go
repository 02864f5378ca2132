package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/grammarfile"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	variant *string
	lex     *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file path>",
		Short: "Parse lines of input interactively",
		Long: `repl reads lines of input and prints a parse verdict for each line.
Lines starting with a colon are commands:
  :tables     print the parser tables
  :states     print the CFSM
  :quit       leave the REPL (or <ctrl>D)`,
		Args: cobra.ExactArgs(1),
		RunE: runREPL,
	}
	replFlags.variant = cmd.Flags().StringP("variant", "v", "", "table variant [lr0|slr1|lr1]")
	replFlags.lex = cmd.Flags().Bool("lex", false, "tokenize input with the arithmetic lexer")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	variant, err := cfg.variant(*replFlags.variant)
	if err != nil {
		return err
	}
	g, err := grammarfile.LoadFile(args[0])
	if err != nil {
		return err
	}
	tables := lr.Compile(g, lr.WithVariant(variant))
	printConflicts(tables)
	intp, err := newInterpreter(tables, *replFlags.lex)
	if err != nil {
		return err
	}
	repl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.REPL.Prompt,
		HistoryFile: cfg.REPL.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.eval(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
	return nil
}

// eval executes a REPL command or parses a line of input. It returns true if
// the user wants to quit.
func (intp *interpreter) eval(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":tables":
		printTables(intp.tables)
		return false
	case ":states":
		printStates(intp.tables.CFSM())
		return false
	}
	if strings.HasPrefix(line, ":") {
		pterm.Error.Println("unknown command " + line)
		return false
	}
	result, err := intp.parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	traceActions(result.Actions)
	printVerdict(line, result)
	return false
}
