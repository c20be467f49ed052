package filter

import (
	"fmt"
	"strings"
)

// MaxConditionsPerGroup is the maximum number of conditions per filter group.
const MaxConditionsPerGroup = 32

// Expression is a structured filter with must/should/must_not boolean semantics.
// A non-empty should group requires at least one of its conditions to hold.
type Expression struct {
	must    []Condition
	should  []Condition
	mustNot []Condition
	nothing bool
}

// NewExpression validates and creates a filter Expression.
func NewExpression(must, should, mustNot []Condition) (Expression, error) {
	if len(must) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many must conditions (max %d)", MaxConditionsPerGroup)
	}
	if len(should) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many should conditions (max %d)", MaxConditionsPerGroup)
	}
	if len(mustNot) > MaxConditionsPerGroup {
		return Expression{}, fmt.Errorf("too many must_not conditions (max %d)", MaxConditionsPerGroup)
	}
	return Expression{must: must, should: should, mustNot: mustNot}, nil
}

// Nothing returns an expression that matches no rows.
func Nothing() Expression { return Expression{nothing: true} }

// Must returns the must conditions.
func (e Expression) Must() []Condition { return e.must }

// Should returns the should conditions.
func (e Expression) Should() []Condition { return e.should }

// MustNot returns the must-not conditions.
func (e Expression) MustNot() []Condition { return e.mustNot }

// IsEmpty reports whether the expression has no conditions. An empty expression matches every row.
func (e Expression) IsEmpty() bool {
	return !e.nothing && len(e.must) == 0 && len(e.should) == 0 && len(e.mustNot) == 0
}

// MatchesNothing reports whether the expression was built with Nothing.
func (e Expression) MatchesNothing() bool { return e.nothing }

// Getter reads a field of a row. ok is false when the field is absent.
type Getter func(key string) (value string, ok bool)

// Matches evaluates the expression against one row.
func (e Expression) Matches(get Getter) bool {
	if e.nothing {
		return false
	}
	for _, c := range e.must {
		if !c.Matches(get) {
			return false
		}
	}
	for _, c := range e.mustNot {
		if c.Matches(get) {
			return false
		}
	}
	if len(e.should) == 0 {
		return true
	}
	for _, c := range e.should {
		if c.Matches(get) {
			return true
		}
	}
	return false
}

// Op is the comparison a Condition performs.
type Op string

// Condition operators.
const (
	// Contains is a case-insensitive substring test.
	Contains Op = "contains"
	Equals   Op = "equals"
	// Present holds when the field exists and is not empty.
	Present Op = "present"
)

// Condition is a single filter clause.
type Condition struct {
	key   string
	op    Op
	value string
}

// NewContains creates a case-insensitive substring condition.
// An empty value would match every row, so it is rejected.
func NewContains(key, value string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if strings.TrimSpace(value) == "" {
		return Condition{}, fmt.Errorf("contains value is required for key %q", key)
	}
	return Condition{key: key, op: Contains, value: value}, nil
}

// NewEquals creates an exact match condition.
func NewEquals(key, value string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if value == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, op: Equals, value: value}, nil
}

// NewPresent creates a non-null condition.
func NewPresent(key string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{key: key, op: Present}, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Op returns the operator.
func (c Condition) Op() Op { return c.op }

// Value returns the operand (empty for Present).
func (c Condition) Value() string { return c.value }

// Matches evaluates the condition against one row.
func (c Condition) Matches(get Getter) bool {
	v, ok := get(c.key)
	if !ok {
		return false
	}
	switch c.op {
	case Contains:
		return strings.Contains(strings.ToLower(v), strings.ToLower(c.value))
	case Equals:
		return v == c.value
	case Present:
		return v != ""
	default:
		return false
	}
}
