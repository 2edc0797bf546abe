package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRuleString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tokema.grammar")
	defer teardown()

	r := NewRule("S", ReferenceQuery{"NP"}, ReferenceQuery{"VP"})
	got := r.String()
	want := "S = <NP> <VP>"
	if got != want {
		t.Errorf("Rule.String() = %q, want %q", got, want)
	}
}

func TestRuleSetSerialAssignment(t *testing.T) {
	a := NewRule("A", ReferenceQuery{"x"})
	b := NewRule("B", ReferenceQuery{"y"})
	rs := NewRuleSet(a, b)
	if a.Serial() != 0 || b.Serial() != 1 {
		t.Fatalf("unexpected serials: a=%d b=%d", a.Serial(), b.Serial())
	}
	if rs.Start() != "A" {
		t.Errorf("Start() = %q, want A", rs.Start())
	}
}

func TestRulesFor(t *testing.T) {
	a1 := NewRule("A", ReferenceQuery{"x"})
	a2 := NewRule("A", ReferenceQuery{"y"})
	b := NewRule("B", ReferenceQuery{"z"})
	rs := NewRuleSet(a1, a2, b)
	got := rs.RulesFor("A")
	if len(got) != 2 || got[0] != a1 || got[1] != a2 {
		t.Fatalf("RulesFor(A) = %v, want [a1 a2]", got)
	}
}

func TestReferenceQueryEquality(t *testing.T) {
	a := ReferenceQuery{"NP"}
	b := ReferenceQuery{"NP"}
	c := ReferenceQuery{"VP"}
	if a != b {
		t.Errorf("expected structurally equal ReferenceQuery values to compare equal")
	}
	if a == c {
		t.Errorf("expected differently named ReferenceQuery values to compare unequal")
	}
}
