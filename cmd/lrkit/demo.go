package main

import (
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/lrparse"
	"github.com/npillmayer/lrkit/lr/scanner/lexmach"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build tables for the sample grammars and parse sample input",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	rootCmd.AddCommand(cmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	pterm.Info.Println("LR(0) sample grammar")
	tables := lr.Compile(sampleGrammar(), lr.WithVariant(lr.LR0))
	printGrammar(tables.Grammar())
	printStates(tables.CFSM())
	printTables(tables)
	results, err := parseSamples(tables)
	if err != nil {
		return err
	}
	for n, result := range results {
		printVerdict(sampleInputs[n], result)
	}
	//
	pterm.Info.Println("LR(1) arithmetic grammar")
	tables = lr.Compile(arithmeticGrammar(), lr.WithVariant(lr.LR1))
	printGrammar(tables.Grammar())
	printConflicts(tables)
	result, err := parseArithmetic(tables, arithmeticInput)
	if err != nil {
		return err
	}
	printVerdict(arithmeticInput, result)
	return nil
}

func parseSamples(tables *lr.Tables) ([]lrparse.Result, error) {
	p := lrparse.NewParser(tables)
	results := make([]lrparse.Result, 0, len(sampleInputs))
	for _, input := range sampleInputs {
		result, err := p.ParseString(input)
		if err != nil {
			return results, err
		}
		traceActions(result.Actions)
		results = append(results, result)
	}
	return results, nil
}

func parseArithmetic(tables *lr.Tables, input string) (lrparse.Result, error) {
	lm, err := lexmach.ArithmeticAdapter()
	if err != nil {
		return lrparse.Result{}, err
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return lrparse.Result{}, err
	}
	result, err := lrparse.NewParser(tables).Parse(scan)
	if err == nil {
		traceActions(result.Actions)
	}
	return result, err
}
