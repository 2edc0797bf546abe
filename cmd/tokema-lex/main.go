/*
tokema-lex demonstrates wiring an external tokenizer (lexmachine) as the
caller-supplied lexical-analysis front end the parser deliberately leaves
out of scope: it splits free text into words, digits and punctuation
symbols, builds a WORD rule per distinct long word found in the text (as
the original Russian-fairy-tale example does), and parses the result into
sentences.

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

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/mirelson/tokema/eof"
	"github.com/mirelson/tokema/grammar"
	"github.com/mirelson/tokema/internal/bench"
	"github.com/mirelson/tokema/parsing"
	"github.com/mirelson/tokema/table"
	"github.com/mirelson/tokema/text"
)

const defaultText = `The old soldier walked home from war. He was tired and hungry.
He knocked on a cottage door: Let a weary traveler rest a while!
An old woman opened the door. Come in, soldier.`

const grammarTemplate = `
DOC = <SENTENCES> {EOF}
SENTENCES = <SENTENCES> <S>
SENTENCES = <S>
S = <WORDS> <SENTENCE_END>
SENTENCE_END = . | ! | ? | :
WORDS = <WORDS> <WORD>
WORDS = <WORD>
`

const minWordLen = 3

// newLexer builds a lexmachine lexer recognizing runs of letters, runs of
// digits, and single punctuation symbols, discarding whitespace.
func newLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	word := func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(1, string(m.Bytes), m), nil
	}
	lex.Add([]byte(`[A-Za-z]+`), word)
	lex.Add([]byte(`[0-9]+`), word)
	lex.Add([]byte(`[.!?:,;()\[\]{}'"-]`), word)
	lex.Add([]byte(`( |\t|\n|\r)+`), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return nil, nil
	})
	if err := lex.Compile(); err != nil {
		return nil, err
	}
	return lex, nil
}

// tokenize runs src through the lexer, returning its lexemes as strings
// followed by the package eof sentinel, mirroring the original source's
// `tokenize` generator in examples/complex_text.py.
func tokenize(lex *lexmachine.Lexer, src string) ([]interface{}, error) {
	scanner, err := lex.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var out []interface{}
	for {
		tok, err, atEOF := scanner.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				scanner.TC = ui.FailTC
				continue
			}
			return nil, err
		}
		if atEOF {
			break
		}
		t := tok.(*lexmachine.Token)
		out = append(out, string(t.Lexeme))
	}
	out = append(out, eof.Token)
	return out, nil
}

func main() {
	textFlag := flag.String("text", "", "path to a text file to parse (default: a small embedded sample)")
	beamLimit := flag.Int("beam", 20, "beam limit for the GLR* driver")
	flag.Parse()

	src := defaultText
	if *textFlag != "" {
		b, err := os.ReadFile(*textFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		src = string(b)
	}

	lex, err := newLexer()
	if err != nil {
		fmt.Fprintln(os.Stderr, "compiling lexer:", err)
		os.Exit(1)
	}

	tokens, err := tokenize(lex, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tokenizing:", err)
		os.Exit(1)
	}

	rules, err := text.ParseRulesFromString(grammarTemplate, text.NewReaderOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "parsing grammar:", err)
		os.Exit(1)
	}

	seen := make(map[string]bool)
	for _, tok := range tokens {
		s, ok := tok.(string)
		if !ok || len([]rune(s)) < minWordLen || !isWord(s) || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		rules = append(rules, grammar.NewRule("WORD", text.TextQuery{Word: s, CaseSensitive: true}))
	}

	var tbl = mustBuildTable(rules)

	var results []*parsing.ParseNode
	func() {
		defer bench.Track("parsing")()
		results = parsing.Parse(parsing.NewSliceIterator(tokens), tbl,
			parsing.WithBeamLimit(*beamLimit),
			parsing.WithRootProduction("DOC"),
		)
	}()

	for _, r := range results {
		fmt.Println(parsing.Sprint(r))
	}
}

func mustBuildTable(rules []*grammar.Rule) *table.ParsingTable {
	defer bench.Track("table construction")()
	tbl, err := text.BuildParsingTable(grammar.NewRuleSet(rules...))
	if err != nil {
		fmt.Fprintln(os.Stderr, "building table:", err)
		os.Exit(1)
	}
	return tbl
}

func isWord(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
