/*
tokema-repl is an interactive sandbox: it loads a grammar (from a file or
the built-in default) and reads lines from the terminal, tokenizing and
parsing each one, printing every surviving parse tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/mirelson/tokema/grammar"
	"github.com/mirelson/tokema/parsing"
	"github.com/mirelson/tokema/text"
)

const defaultGrammar = `
ROOT = <S>
S = <NP> <VP>
NP = det n | n | <NP> <PP>
VP = v <NP>
PP = p <NP>
`

var appTracer tracing.Trace

func tracer() tracing.Trace { return appTracer }

func main() {
	appTracer = gologadapter.New()
	grammarFile := flag.String("grammar", "", "path to a BNF-flavored grammar file (default: a small NP/VP demo grammar)")
	beamLimit := flag.Int("beam", 100, "beam limit for the GLR* driver")
	root := flag.String("root", "ROOT", "root production to report parses for")
	flag.Parse()

	src := defaultGrammar
	if *grammarFile != "" {
		b, err := os.ReadFile(*grammarFile)
		if err != nil {
			tracer().Errorf("reading grammar file: %v", err)
			os.Exit(1)
		}
		src = string(b)
	}

	rules, err := text.ParseRulesFromString(src, text.NewReaderOptions())
	if err != nil {
		tracer().Errorf("parsing grammar: %v", err)
		os.Exit(1)
	}
	tbl, err := text.BuildParsingTable(grammar.NewRuleSet(rules...))
	if err != nil {
		tracer().Errorf("building table: %v", err)
		os.Exit(1)
	}
	if tbl.HasConflicts {
		pterm.Error.Println("grammar has shift/reduce or reduce/reduce conflicts; all actions will be explored")
	}
	pterm.Info.Println(fmt.Sprintf("loaded grammar: %d states", tbl.StateCount))

	repl, err := readline.New("tokema> ")
	if err != nil {
		tracer().Errorf("starting readline: %v", err)
		os.Exit(1)
	}
	defer repl.Close()

	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on ^D, readline.ErrInterrupt on ^C
			break
		}
		if line == "" {
			continue
		}
		tokens := text.Tokenize(line, true)
		results := parsing.Parse(parsing.NewSliceIterator(tokens), tbl,
			parsing.WithBeamLimit(*beamLimit),
			parsing.WithRootProduction(*root),
		)
		if len(results) == 0 {
			pterm.Error.Println("no parse")
			continue
		}
		for i, r := range results {
			pterm.Info.Println(fmt.Sprintf("parse %d/%d:", i+1, len(results)))
			fmt.Println(parsing.Sprint(r))
		}
	}
}
