package product

import (
	"math"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

func TestNew_Valid(t *testing.T) {
	p, err := New("p-1", Attributes{Name: "Lash Sensational", Price: "249 TL", RatingScore: floatPtr(4.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != "p-1" {
		t.Errorf("expected id p-1, got %s", p.ID())
	}
	if p.RatingScore() == nil || *p.RatingScore() != 4.5 {
		t.Errorf("expected rating score 4.5, got %v", p.RatingScore())
	}
}

func TestNew_EmptyID(t *testing.T) {
	if _, err := New("  ", Attributes{}); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestNew_InvalidScore(t *testing.T) {
	for _, s := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := New("p-1", Attributes{RatingScore: floatPtr(s)}); err == nil {
			t.Errorf("expected error for score %v", s)
		}
	}
}

func TestRatingScore_ReturnsCopy(t *testing.T) {
	p, _ := New("p-1", Attributes{RatingScore: floatPtr(3)})
	*p.RatingScore() = 100
	if *p.RatingScore() != 3 {
		t.Fatal("rating score must not be mutable through the getter")
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"4.7", floatPtr(4.7)},
		{" 0 ", floatPtr(0)},
		{"", nil},
		{"n/a", nil},
		{"-2", nil},
		{"NaN", nil},
		{"+Inf", nil},
	}
	for _, tc := range tests {
		got := ParseScore(tc.in)
		if (got == nil) != (tc.want == nil) {
			t.Errorf("ParseScore(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		if got != nil && *got != *tc.want {
			t.Errorf("ParseScore(%q) = %v, want %v", tc.in, *got, *tc.want)
		}
	}
}

func TestFieldsRoundTrip_NullScoreOmitted(t *testing.T) {
	p, _ := New("p-2", Attributes{Name: "Ruj", Subcategory: "ruj"})
	fields := p.ToFields()
	if _, ok := fields[FieldRatingScore]; ok {
		t.Fatal("null rating score must not be flattened")
	}

	back, err := FromFields(fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.RatingScore() != nil {
		t.Errorf("expected nil score, got %v", *back.RatingScore())
	}
	if back.Subcategory() != "ruj" {
		t.Errorf("expected subcategory ruj, got %s", back.Subcategory())
	}
}
