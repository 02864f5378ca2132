package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/grammarfile"
	"github.com/spf13/cobra"
)

var tablesFlags = struct {
	variant *string
	dot     *string
	html    *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "tables <grammar file path>...",
		Short:   "Build the CFSM and parser tables for grammars",
		Example: `  lrkit tables --variant slr1 --dot cfsm.dot expr.yaml`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runTables,
	}
	tablesFlags.variant = cmd.Flags().StringP("variant", "v", "", "table variant [lr0|slr1|lr1]")
	tablesFlags.dot = cmd.Flags().String("dot", "", "write the CFSM in Graphviz DOT format")
	tablesFlags.html = cmd.Flags().String("html", "", "write ACTION and GOTO tables as HTML")
	rootCmd.AddCommand(cmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	variant, err := cfg.variant(*tablesFlags.variant)
	if err != nil {
		return err
	}
	grammars, err := grammarfile.LoadFiles(args)
	if err != nil {
		return err
	}
	all := lr.CompileAll(grammars, lr.WithVariant(variant))
	dotFile, htmlFile := *tablesFlags.dot, *tablesFlags.html
	if dotFile == "" {
		dotFile = cfg.Tables.DotFile
	}
	if htmlFile == "" {
		htmlFile = cfg.Tables.HTMLFile
	}
	multi := len(all) > 1
	for _, tables := range all {
		printGrammar(tables.Grammar())
		printStates(tables.CFSM())
		printTables(tables)
		name := tables.Grammar().Name
		if dotFile != "" {
			if err := writeFile(outputName(dotFile, name, multi), tables.CFSM().ToGraphViz); err != nil {
				return err
			}
		}
		if htmlFile != "" {
			write := func(w io.Writer) error {
				return lr.TablesAsHTML(tables, w)
			}
			if err := writeFile(outputName(htmlFile, name, multi), write); err != nil {
				return err
			}
		}
	}
	return nil
}

// outputName inserts the grammar name into a file name if more than one
// grammar is written: "cfsm.dot" ➞ "cfsm-G.dot".
func outputName(path string, grammar string, multi bool) string {
	if !multi {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + grammar + ext
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	tracer().Infof("wrote %s", path)
	return f.Close()
}
