package filter

import (
	"strings"
	"testing"
)

func row(fields map[string]string) Getter {
	return func(key string) (string, bool) {
		v, ok := fields[key]
		return v, ok
	}
}

// --- Condition tests ---

func TestNewContains_Valid(t *testing.T) {
	c, err := NewContains("name", "Ruj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Key() != "name" {
		t.Errorf("Key() = %q", c.Key())
	}
	if c.Op() != Contains {
		t.Errorf("Op() = %q", c.Op())
	}
	if c.Value() != "Ruj" {
		t.Errorf("Value() = %q", c.Value())
	}
}

func TestNewContains_EmptyValue(t *testing.T) {
	for _, v := range []string{"", "   "} {
		_, err := NewContains("subcategory", v)
		if err == nil {
			t.Fatalf("expected error for value %q", v)
		}
		if !strings.Contains(err.Error(), "contains value") {
			t.Errorf("error = %q", err)
		}
	}
}

func TestNewCondition_EmptyKey(t *testing.T) {
	if _, err := NewContains("", "x"); err == nil {
		t.Error("NewContains: expected error")
	}
	if _, err := NewEquals("", "x"); err == nil {
		t.Error("NewEquals: expected error")
	}
	if _, err := NewPresent(""); err == nil {
		t.Error("NewPresent: expected error")
	}
}

func TestNewEquals_EmptyValue(t *testing.T) {
	_, err := NewEquals("product_id", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "match value") {
		t.Errorf("error = %q", err)
	}
}

func TestCondition_Matches(t *testing.T) {
	r := row(map[string]string{"name": "Kalıcı RUJ Kırmızı", "product_id": "p1", "rating_score": ""})

	contains, _ := NewContains("name", "ruj")
	missing, _ := NewContains("description", "ruj")
	equals, _ := NewEquals("product_id", "p1")
	equalsCase, _ := NewEquals("product_id", "P1")
	presentEmpty, _ := NewPresent("rating_score")
	presentMissing, _ := NewPresent("color")
	presentName, _ := NewPresent("name")

	tests := []struct {
		name string
		c    Condition
		want bool
	}{
		{"contains case-insensitive", contains, true},
		{"contains absent field", missing, false},
		{"equals", equals, true},
		{"equals is case-sensitive", equalsCase, false},
		{"present empty", presentEmpty, false},
		{"present absent", presentMissing, false},
		{"present", presentName, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Matches(r); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Expression tests ---

func TestNewExpression_Empty(t *testing.T) {
	expr, err := NewExpression(nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !expr.IsEmpty() {
		t.Error("IsEmpty() = false for empty expression")
	}
	if !expr.Matches(row(nil)) {
		t.Error("empty expression should match every row")
	}
}

func TestNothing(t *testing.T) {
	expr := Nothing()
	if !expr.MatchesNothing() {
		t.Error("MatchesNothing() = false")
	}
	if expr.IsEmpty() {
		t.Error("IsEmpty() = true for Nothing")
	}
	if expr.Matches(row(map[string]string{"name": "anything"})) {
		t.Error("Nothing matched a row")
	}
}

func TestExpression_Matches(t *testing.T) {
	ruj, _ := NewContains("subcategory", "ruj")
	far, _ := NewContains("subcategory", "far")
	notA, _ := NewEquals("product_id", "A")

	a := row(map[string]string{"product_id": "A", "subcategory": "ruj"})
	b := row(map[string]string{"product_id": "B", "subcategory": "ruj"})
	c := row(map[string]string{"product_id": "C", "subcategory": "far"})

	recommend, _ := NewExpression([]Condition{ruj}, nil, []Condition{notA})
	if recommend.Matches(a) {
		t.Error("must_not did not exclude A")
	}
	if !recommend.Matches(b) {
		t.Error("B should match")
	}
	if recommend.Matches(c) {
		t.Error("C should not match")
	}

	either, _ := NewExpression(nil, []Condition{ruj, far}, nil)
	for _, r := range []Getter{a, b, c} {
		if !either.Matches(r) {
			t.Error("should group: expected match")
		}
	}

	onlyFar, _ := NewExpression(nil, []Condition{far}, nil)
	if onlyFar.Matches(a) {
		t.Error("should group: unexpected match")
	}
}

func TestNewExpression_TooManyMust(t *testing.T) {
	conds := make([]Condition, MaxConditionsPerGroup+1)
	for i := range conds {
		conds[i] = Condition{key: "k", op: Equals, value: "v"}
	}
	_, err := NewExpression(conds, nil, nil)
	if err == nil {
		t.Fatal("expected error for too many must conditions")
	}
	if !strings.Contains(err.Error(), "too many must") {
		t.Errorf("error = %q", err)
	}
}

func TestNewExpression_TooManyShould(t *testing.T) {
	conds := make([]Condition, MaxConditionsPerGroup+1)
	for i := range conds {
		conds[i] = Condition{key: "k", op: Contains, value: "v"}
	}
	_, err := NewExpression(nil, conds, nil)
	if err == nil {
		t.Fatal("expected error for too many should conditions")
	}
	if !strings.Contains(err.Error(), "too many should") {
		t.Errorf("error = %q", err)
	}
}

func TestNewExpression_TooManyMustNot(t *testing.T) {
	conds := make([]Condition, MaxConditionsPerGroup+1)
	for i := range conds {
		conds[i] = Condition{key: "k", op: Equals, value: "v"}
	}
	_, err := NewExpression(nil, nil, conds)
	if err == nil {
		t.Fatal("expected error for too many must_not conditions")
	}
	if !strings.Contains(err.Error(), "too many must_not") {
		t.Errorf("error = %q", err)
	}
}

func TestNewExpression_AtMaxConditions(t *testing.T) {
	conds := make([]Condition, MaxConditionsPerGroup)
	for i := range conds {
		conds[i] = Condition{key: "k", op: Equals, value: "v"}
	}
	_, err := NewExpression(conds, conds, conds)
	if err != nil {
		t.Fatalf("unexpected error for exactly max conditions: %v", err)
	}
}
