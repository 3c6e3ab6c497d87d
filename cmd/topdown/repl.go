package main

import (
	"errors"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/gramfile"
	"github.com/npillmayer/topdown/ll/predictive"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively edit a grammar and parse input",
		Long: `Lines of the form 'X -> …' add productions, other lines are parsed.
Commands are
  :grammar   print the grammar
  :first     print FIRST- and FOLLOW-sets
  :table     print the LL(1) table
  :ebnf      print the grammar in EBNF notation
  :new       start over with an empty grammar
  :quit      leave (or <ctrl>D)`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

// Intp is our interpreter object. The grammar is kept as the lines of a
// grammar file, which are re-read whenever a production is added.
type Intp struct {
	source []string
	g      *ll.Grammar
	ga     *ll.Analysis
	table  *ll.Table
	repl   *readline.Instance
}

func runREPL(cmd *cobra.Command, args []string) error {
	intp := &Intp{}
	if *rootFlags.grammar == "" {
		intp.source = strings.Split(strings.TrimSpace(defaultGrammar), "\n")
	} else {
		g, err := loadGrammar()
		if err != nil {
			return err
		}
		if g != nil {
			intp.source = grammarSource(g)
		}
	}
	if err := intp.rebuild(); err != nil {
		pterm.Error.Println(err.Error())
	}
	repl, err := readline.New("topdown> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to topdown")
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval executes a command, adds a production or parses an input line.
func (intp *Intp) Eval(line string) (bool, error) {
	switch {
	case line == ":quit" || line == ":q":
		return true, nil
	case line == ":grammar":
		if intp.g == nil {
			return false, errNoGrammar
		}
		printGrammar(intp.g)
	case line == ":first":
		if intp.ga == nil {
			return false, errNoGrammar
		}
		printFirstFollow(intp.ga)
	case line == ":table":
		if intp.table == nil {
			return false, errNoTable
		}
		printTable(intp.table)
	case line == ":ebnf":
		if intp.g == nil {
			return false, errNoGrammar
		}
		return false, printEBNF(intp.g)
	case line == ":new":
		intp.source = nil
		return false, intp.rebuild()
	case strings.HasPrefix(line, ":"):
		return false, errors.New("unknown command " + line)
	case strings.Contains(line, "->") || strings.HasPrefix(line, "%"):
		return false, intp.addLine(line)
	default:
		if intp.table == nil {
			return false, errNoTable
		}
		tree, err := predictive.NewParser(intp.table).Parse(line)
		if err != nil {
			return false, err
		}
		printTree(tree)
	}
	return false, nil
}

var (
	errNoGrammar = errors.New("no grammar defined")
	errNoTable   = errors.New("no LL(1) table available")
)

// addLine adds a line to the grammar source. If the resulting grammar
// cannot be read, the line is dropped again.
func (intp *Intp) addLine(line string) error {
	intp.source = append(intp.source, line)
	err := intp.rebuild()
	var ferr *gramfile.Error
	if errors.As(err, &ferr) {
		intp.source = intp.source[:len(intp.source)-1]
		intp.rebuild()
	}
	return err
}

// rebuild re-reads the grammar source and re-creates analysis and table.
func (intp *Intp) rebuild() error {
	intp.g, intp.ga, intp.table = nil, nil, nil
	g, err := gramfile.ReadGrammar(strings.NewReader(strings.Join(intp.source, "\n")))
	if errors.Is(err, gramfile.ErrEmpty) {
		pterm.Info.Println("No grammar defined")
		return nil
	} else if err != nil {
		return err
	}
	intp.g = g
	ga, table, err := buildTable(g)
	intp.ga = ga
	if err != nil {
		return err
	}
	intp.table = table
	pterm.Info.Printf("Grammar %s is LL(1), %d alternatives\n", g.Name, g.Size())
	return nil
}

// grammarSource renders a grammar in the format of package gramfile.
// Alternatives are written in registration order.
func grammarSource(g *ll.Grammar) []string {
	var nonterm, term strings.Builder
	for _, V := range g.NonTerminals() {
		nonterm.WriteString(V.String())
	}
	for _, a := range g.Terminals() {
		term.WriteString(a.String())
	}
	src := []string{
		"%name " + g.Name,
		"%nonterminals " + nonterm.String(),
		"%terminals " + term.String(),
		"%start " + g.Start().String(),
	}
	for n := 0; n < g.Size(); n++ {
		alt := g.AlternativeBySerial(n)
		rhs := alt.String()
		if alt.IsEpsilon() {
			rhs = ll.EpsilonWord
		}
		src = append(src, alt.LHS.String()+" -> "+rhs)
	}
	return src
}
