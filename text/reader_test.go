package text

import (
	"testing"

	"github.com/mirelson/tokema/eof"
	"github.com/mirelson/tokema/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseRulesFromStringBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tokema.text")
	defer teardown()

	src := `
# a comment
S = <NP> <VP> | hello world
NP = the cat | a dog
`
	rules, err := ParseRulesFromString(src, NewReaderOptions())
	if err != nil {
		t.Fatalf("ParseRulesFromString: %v", err)
	}
	if len(rules) != 4 {
		t.Fatalf("got %d rules, want 4: %v", len(rules), rules)
	}
	if rules[0].Production != "S" || len(rules[0].Queries) != 2 {
		t.Fatalf("unexpected first rule: %s", rules[0])
	}
	if _, ok := rules[0].Queries[0].(grammar.ReferenceQuery); !ok {
		t.Fatalf("expected a reference query, got %T", rules[0].Queries[0])
	}
}

func TestParseRulesFromStringSpecialQueries(t *testing.T) {
	src := "N = {int} | {float} | {EOF}"
	rules, err := ParseRulesFromString(src, NewReaderOptions())
	if err != nil {
		t.Fatalf("ParseRulesFromString: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("got %d rules, want 3", len(rules))
	}
	if _, ok := rules[0].Queries[0].(IntQuery); !ok {
		t.Errorf("expected IntQuery, got %T", rules[0].Queries[0])
	}
	if _, ok := rules[1].Queries[0].(FloatQuery); !ok {
		t.Errorf("expected FloatQuery, got %T", rules[1].Queries[0])
	}
	if _, ok := rules[2].Queries[0].(eof.Query); !ok {
		t.Errorf("expected eof.Query, got %T", rules[2].Queries[0])
	}
}

func TestParseRulesFromStringMissingSeparator(t *testing.T) {
	_, err := ParseRulesFromString("S hello", NewReaderOptions())
	if err == nil {
		t.Fatal("expected an error for a line missing the rule separator")
	}
	rerr, ok := err.(*ReaderError)
	if !ok {
		t.Fatalf("expected *ReaderError, got %T", err)
	}
	if rerr.Line != 1 {
		t.Errorf("Line = %d, want 1", rerr.Line)
	}
}

func TestParseRulesFromStringMissingProduction(t *testing.T) {
	_, err := ParseRulesFromString("= hello", NewReaderOptions())
	if err == nil {
		t.Fatal("expected an error for a line missing the production name")
	}
}

func TestParseRulesFromStringEmptyAlternative(t *testing.T) {
	_, err := ParseRulesFromString("S = hello |  | world", NewReaderOptions())
	if err == nil {
		t.Fatal("expected an error for an empty alternative")
	}
}
