/*
tokema-arith is the worked arithmetic noise-skipping example from the
end-to-end test scenarios: it builds ROOT = <EXPR>, EXPR = {float} +
{float} and parses a token stream with irrelevant leading and interleaved
words mixed in, printing the single surviving parse tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mirelson/tokema/grammar"
	"github.com/mirelson/tokema/internal/bench"
	"github.com/mirelson/tokema/parsing"
	"github.com/mirelson/tokema/table"
	"github.com/mirelson/tokema/text"
)

const arithGrammar = `
ROOT = <EXPR>
EXPR = {float} + {float}
`

func main() {
	input := flag.String("input", "this will be ignored 3.1415 and + this 4e-10", "whitespace-separated input tokens")
	flag.Parse()

	rules, err := text.ParseRulesFromString(arithGrammar, text.NewReaderOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "parsing grammar:", err)
		os.Exit(1)
	}

	var tbl, buildErr = func() (*table.ParsingTable, error) {
		defer bench.Track("table construction")()
		return text.BuildParsingTable(grammar.NewRuleSet(rules...))
	}()
	if buildErr != nil {
		fmt.Fprintln(os.Stderr, "building table:", buildErr)
		os.Exit(1)
	}

	tokens := text.Tokenize(strings.TrimSpace(*input), false)

	var results []*parsing.ParseNode
	func() {
		defer bench.Track("parsing")()
		results = parsing.Parse(parsing.NewSliceIterator(tokens), tbl)
	}()

	if len(results) == 0 {
		fmt.Println("no parse")
		return
	}
	for _, r := range results {
		fmt.Println(parsing.Sprint(r))
	}
}
