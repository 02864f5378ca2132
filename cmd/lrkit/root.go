package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	config *string
	trace  *string
}{}

// cfg holds the settings of the current invocation.
var cfg = Default()

var rootCmd = &cobra.Command{
	Use:   "lrkit",
	Short: "Generate LR parser tables and parse input with them",
	Long: `lrkit provides the following features:
- Builds the LR(0) or canonical LR(1) collection of item sets for a grammar.
- Derives LR(0), SLR(1) or LR(1) ACTION/GOTO tables and reports conflicts.
- Parses input with the table-driven LR parser and prints the verdict.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.config = rootCmd.PersistentFlags().StringP("config", "c", "", "TOML configuration file")
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "", "trace level [Debug|Info|Error]")
}

// Execute runs the command selected by the command line.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if *rootFlags.config != "" {
		c, err := Load(*rootFlags.config)
		if err != nil {
			return err
		}
		cfg = c
	}
	if *rootFlags.trace != "" {
		cfg.General.TraceLevel = *rootFlags.trace
	}
	setTraceLevel(cfg.General.TraceLevel)
	tracer().Debugf("configuration: %+v", *cfg)
	return nil
}

func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range []string{"lrkit.lr", "lrkit.scanner"} {
		tracing.Select(key).SetTraceLevel(l)
	}
}
