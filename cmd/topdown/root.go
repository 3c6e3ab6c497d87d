package main

import (
	"errors"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/gramfile"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	grammar *string
	trace   *string
}{}

var rootCmd = &cobra.Command{
	Use:   "topdown",
	Short: "Analyse LL(1) grammars and parse input with a predictive parser",
	Long: `topdown provides three features:
- Computes FIRST- and FOLLOW-sets and the LL(1) table of a grammar.
- Parses an input string with a table-driven predictive parser.
- An interactive mode to grow a grammar and try inputs.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.grammar = rootCmd.PersistentFlags().StringP("grammar", "g", "", "grammar file (default: built-in expression grammar)")
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
}

// Execute runs the command selected by the command line arguments.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return err
}

// tracingKeys are the keys of all tracers of this module.
var tracingKeys = []string{"topdown.cli", "topdown.ll", "topdown.scanner", "topdown.parser"}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *rootFlags.trace)
	return nil
}

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
}

// defaultGrammar is used if no grammar file is given.
const defaultGrammar = `# expressions with + and *
%name Expressions
%nonterminals SABCD
%terminals +*i
%start S
S -> AB
A -> CD
B -> +AB | eps
C -> i | (S)
D -> *CD | eps
`

// loadGrammar reads the grammar file given with flag -g, or the default
// grammar. If the grammar file contains no productions, nil is returned
// without an error.
func loadGrammar() (*ll.Grammar, error) {
	var g *ll.Grammar
	var err error
	if *rootFlags.grammar == "" {
		g, err = gramfile.ReadGrammar(strings.NewReader(defaultGrammar))
	} else {
		f, ferr := os.Open(*rootFlags.grammar)
		if ferr != nil {
			return nil, ferr
		}
		defer f.Close()
		g, err = gramfile.ReadGrammar(f)
	}
	if errors.Is(err, gramfile.ErrEmpty) {
		pterm.Info.Println("No grammar defined")
		return nil, nil
	}
	return g, err
}

// buildTable analyses a grammar and creates its LL(1) table. The analysis is
// returned even if table construction fails.
func buildTable(g *ll.Grammar) (*ll.Analysis, *ll.Table, error) {
	ga := ll.NewAnalysis(g)
	if err := ga.CalculateFollows(); err != nil {
		return ga, nil, err
	}
	table, err := ll.BuildTable(ga)
	return ga, table, err
}
