package main

import (
	"errors"
	"strings"

	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/grammarfile"
	"github.com/npillmayer/lrkit/lr/lrparse"
	"github.com/npillmayer/lrkit/lr/scanner/lexmach"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	variant *string
	lex     *bool
}{}

var errRejected = errors.New("input rejected")

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file path> <input>...",
		Short:   "Parse input with the tables for a grammar",
		Example: `  lrkit parse a.yaml a a b`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runParse,
	}
	parseFlags.variant = cmd.Flags().StringP("variant", "v", "", "table variant [lr0|slr1|lr1]")
	parseFlags.lex = cmd.Flags().Bool("lex", false, "tokenize input with the arithmetic lexer")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	variant, err := cfg.variant(*parseFlags.variant)
	if err != nil {
		return err
	}
	g, err := grammarfile.LoadFile(args[0])
	if err != nil {
		return err
	}
	tables := lr.Compile(g, lr.WithVariant(variant))
	printConflicts(tables)
	input := strings.Join(args[1:], " ")
	intp, err := newInterpreter(tables, *parseFlags.lex)
	if err != nil {
		return err
	}
	result, err := intp.parse(input)
	if err != nil {
		return err
	}
	printVerdict(input, result)
	if !result.Accepted() {
		return errRejected
	}
	return nil
}

// interpreter parses lines of input with a fixed set of tables.
type interpreter struct {
	tables *lr.Tables
	parser *lrparse.Parser
	lexer  *lexmach.LMAdapter // nil for white space separated terminals
}

func newInterpreter(tables *lr.Tables, lex bool) (*interpreter, error) {
	intp := &interpreter{
		tables: tables,
		parser: lrparse.NewParser(tables),
	}
	if lex {
		lm, err := lexmach.ArithmeticAdapter()
		if err != nil {
			return nil, err
		}
		intp.lexer = lm
	}
	return intp, nil
}

func (intp *interpreter) parse(input string) (lrparse.Result, error) {
	if intp.lexer == nil {
		return intp.parser.ParseString(input)
	}
	scan, err := intp.lexer.Scanner(input)
	if err != nil {
		return lrparse.Result{}, err
	}
	return intp.parser.Parse(scan)
}
