package eof

import (
	"testing"

	"github.com/mirelson/tokema/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResolverResolvesOnlyToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tokema.eof")
	defer teardown()

	r := NewResolver()
	cell := &table.ActionCell{}
	r.Register(Query{}, cell)

	got, _ := r.Resolve(Token)
	if got != cell {
		t.Fatalf("Resolve(Token) = %v, want the registered cell", got)
	}

	got, _ = r.Resolve("not eof")
	if got != nil {
		t.Fatalf("Resolve(non-token) = %v, want nil", got)
	}
}

func TestQueryStringer(t *testing.T) {
	if Token.String() != "{EOF}" {
		t.Errorf("Token.String() = %q, want {EOF}", Token.String())
	}
	if (Query{}).String() != "{EOF}" {
		t.Errorf("Query{}.String() = %q, want {EOF}", Query{}.String())
	}
}
