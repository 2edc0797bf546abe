package text

import (
	"testing"

	"github.com/mirelson/tokema/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestExactTextResolverCaseSensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tokema.text")
	defer teardown()

	r := NewExactTextResolver()
	cell := &table.ActionCell{}
	r.Register(TextQuery{Word: "Cat", CaseSensitive: true}, cell)

	if got, _ := r.Resolve("Cat"); got != cell {
		t.Errorf("Resolve(Cat) = %v, want cell", got)
	}
	if got, _ := r.Resolve("cat"); got != nil {
		t.Errorf("Resolve(cat) = %v, want nil (exact resolver is case-sensitive)", got)
	}
}

func TestCaseInsensitiveTextResolver(t *testing.T) {
	r := NewCaseInsensitiveTextResolver()
	cell := &table.ActionCell{}
	r.Register(TextQuery{Word: "Cat", CaseSensitive: false}, cell)

	for _, tok := range []string{"Cat", "cat", "CAT"} {
		if got, _ := r.Resolve(tok); got != cell {
			t.Errorf("Resolve(%q) = %v, want cell", tok, got)
		}
	}
}

func TestIntResolver(t *testing.T) {
	r := NewIntResolver()
	cell := &table.ActionCell{}
	r.Register(IntQuery{}, cell)

	got, meta := r.Resolve("42")
	if got != cell {
		t.Fatalf("Resolve(42) cell = %v, want cell", got)
	}
	if meta != 42 {
		t.Errorf("Resolve(42) meta = %v, want 42", meta)
	}

	if got, _ := r.Resolve("not a number"); got != nil {
		t.Errorf("Resolve(non-int) = %v, want nil", got)
	}
}

func TestFloatResolver(t *testing.T) {
	r := NewFloatResolver()
	cell := &table.ActionCell{}
	r.Register(FloatQuery{}, cell)

	got, meta := r.Resolve("3.5")
	if got != cell {
		t.Fatalf("Resolve(3.5) cell = %v, want cell", got)
	}
	if meta != 3.5 {
		t.Errorf("Resolve(3.5) meta = %v, want 3.5", meta)
	}
}

func TestLevenshteinTextResolverToleratesOneEdit(t *testing.T) {
	r := NewLevenshteinTextResolver()
	cell := &table.ActionCell{}
	r.Register(TextQuery{Word: "hello", CaseSensitive: true}, cell)

	if got, _ := r.Resolve("hello"); got != cell {
		t.Fatalf("Resolve(hello) = %v, want cell", got)
	}
	if got, _ := r.Resolve("hallo"); got != cell {
		t.Errorf("Resolve(hallo) = %v, want cell (single substitution)", got)
	}
	if got, _ := r.Resolve("helo"); got != cell {
		t.Errorf("Resolve(helo) = %v, want cell (single deletion)", got)
	}
}

func TestLevenshteinTextResolverSkipsShortWords(t *testing.T) {
	r := NewLevenshteinTextResolver()
	r.MinWordLength = 4
	cell := &table.ActionCell{}
	r.Register(TextQuery{Word: "cat", CaseSensitive: true}, cell)

	if got, _ := r.Resolve("cat"); got != nil {
		t.Errorf("expected a word shorter than MinWordLength to not be indexed, got %v", got)
	}
}
