package main

import (
	"os"

	"github.com/npillmayer/topdown/ll/parsetree"
	"github.com/npillmayer/topdown/ll/predictive"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	dot        *string
	reductions *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <input>",
		Short:   "Parse an input string",
		Example: `  topdown parse 'i+i*i'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.dot = cmd.Flags().String("dot", "", "export the parse tree to a Graphviz file")
	parseFlags.reductions = cmd.Flags().BoolP("reductions", "r", false, "list the alternatives applied, bottom up")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil || g == nil {
		return err
	}
	_, table, err := buildTable(g)
	if err != nil {
		return err
	}
	tree, err := predictive.NewParser(table).Parse(args[0])
	if err != nil {
		return err
	}
	printTree(tree)
	if *parseFlags.reductions {
		printReductions(tree)
	}
	if *parseFlags.dot != "" {
		f, err := os.Create(*parseFlags.dot)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := parsetree.ToGraphViz(tree, f); err != nil {
			return err
		}
		pterm.Info.Printf("parse tree written to %s\n", *parseFlags.dot)
	}
	return nil
}
