package ident

import "testing"

func TestIDString(t *testing.T) {
	id := ID{Prefix: "Char", Numeric: 12}
	if got := id.String(); got != "Char-12" {
		t.Fatalf("expected Char-12, got %q", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	id, err := Parse("CampPlan-3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.Prefix != "CampPlan" || id.Numeric != 3 {
		t.Fatalf("unexpected id %+v", id)
	}
	if id.String() != "CampPlan-3" {
		t.Fatalf("expected round trip, got %q", id.String())
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{"", "Char", "Char-", "-12", "Char-x", "Char--1"}
	for _, value := range cases {
		if _, err := Parse(value); err == nil {
			t.Fatalf("expected parse %q to fail", value)
		}
	}
}

func TestUnsetSentinel(t *testing.T) {
	if !Unset().IsUnset() {
		t.Fatalf("expected zero value to be unset")
	}
	if (ID{Prefix: "R", Numeric: 1}).IsUnset() {
		t.Fatalf("expected assigned id to not be unset")
	}
}

func TestScopeValid(t *testing.T) {
	if !Global.Valid() {
		t.Fatalf("expected global scope to be valid")
	}
	if !Scope(42).Valid() {
		t.Fatalf("expected positive scope to be valid")
	}
	if Scope(-1).Valid() {
		t.Fatalf("expected negative scope to be invalid")
	}
}
