package main

import (
	"os"

	"github.com/npillmayer/topdown/ll"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var analyzeFlags = struct {
	ebnf *bool
	html *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Print FIRST- and FOLLOW-sets and the LL(1) table of a grammar",
		Example: `  topdown analyze -g expr.grammar --html table.html`,
		Args:    cobra.NoArgs,
		RunE:    runAnalyze,
	}
	analyzeFlags.ebnf = cmd.Flags().Bool("ebnf", false, "print and verify the grammar in EBNF notation")
	analyzeFlags.html = cmd.Flags().String("html", "", "export the LL(1) table to an HTML file")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil || g == nil {
		return err
	}
	printGrammar(g)
	if *analyzeFlags.ebnf {
		if err := printEBNF(g); err != nil {
			return err
		}
	}
	ga, table, err := buildTable(g)
	printFirstFollow(ga)
	if err != nil {
		return err
	}
	printTable(table)
	if *analyzeFlags.html != "" {
		f, err := os.Create(*analyzeFlags.html)
		if err != nil {
			return err
		}
		defer f.Close()
		ll.TableAsHTML(table, f)
		pterm.Info.Printf("LL(1) table written to %s\n", *analyzeFlags.html)
	}
	return nil
}
