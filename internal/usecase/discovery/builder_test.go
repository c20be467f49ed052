package discovery

import (
	"fmt"
	"testing"

	"github.com/kailas-cloud/beautydex/internal/domain/intent"
	"github.com/kailas-cloud/beautydex/internal/domain/lexicon"
	"github.com/kailas-cloud/beautydex/internal/domain/search/filter"
)

func TestFreeTextPredicate(t *testing.T) {
	expr, err := FreeTextPredicate([]string{"nyx", "mat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr.Must()) != 0 || len(expr.MustNot()) != 0 {
		t.Errorf("expected should-only expression, got %+v", expr)
	}

	want := []string{"name~nyx", "description~nyx", "name~mat", "description~mat"}
	should := expr.Should()
	if len(should) != len(want) {
		t.Fatalf("should = %d conditions, want %d", len(should), len(want))
	}
	for i, c := range should {
		got := fmt.Sprintf("%s~%s", c.Key(), c.Value())
		if c.Op() != filter.Contains || got != want[i] {
			t.Errorf("should[%d] = %s (%s), want %s", i, got, c.Op(), want[i])
		}
	}
}

func TestFreeTextPredicate_EmptyMatchesNothing(t *testing.T) {
	for _, terms := range [][]string{nil, {}, {" ", ""}} {
		expr, err := FreeTextPredicate(terms)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !expr.MatchesNothing() {
			t.Errorf("FreeTextPredicate(%q) should match nothing", terms)
		}
		if expr.IsEmpty() {
			t.Errorf("FreeTextPredicate(%q) must not be the match-all expression", terms)
		}
	}
}

func TestFreeTextPredicate_CapsTerms(t *testing.T) {
	terms := make([]string, MaxTerms+5)
	for i := range terms {
		terms[i] = fmt.Sprintf("t%02d", i)
	}

	expr, err := FreeTextPredicate(terms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr.Should()) != 2*MaxTerms {
		t.Errorf("should = %d, want %d", len(expr.Should()), 2*MaxTerms)
	}
	if last := expr.Should()[len(expr.Should())-1]; last.Value() != fmt.Sprintf("t%02d", MaxTerms-1) {
		t.Errorf("last term = %q", last.Value())
	}
}

func TestCategoryPredicate(t *testing.T) {
	expr, err := CategoryPredicate(lexicon.TokenLipstick)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	should := expr.Should()
	if len(should) != 2 {
		t.Fatalf("should = %d", len(should))
	}
	if should[0].Key() != "subcategory" || should[1].Key() != "description" {
		t.Errorf("keys = %s, %s", should[0].Key(), should[1].Key())
	}
	for _, c := range should {
		if c.Value() != "ruj" {
			t.Errorf("value = %q", c.Value())
		}
	}

	blank, _ := CategoryPredicate("")
	if !blank.MatchesNothing() {
		t.Error("blank token should match nothing")
	}
}

func TestTopRatedRequest(t *testing.T) {
	req, err := TopRatedRequest(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	must := req.Filters().Must()
	if len(must) != 1 || must[0].Op() != filter.Present || must[0].Key() != "rating_score" {
		t.Errorf("must = %+v", must)
	}
	s := req.Sort()
	if s == nil || s.Field() != "rating_score" || !s.Descending() {
		t.Errorf("sort = %+v", s)
	}
	if req.Limit() != 7 {
		t.Errorf("limit = %d", req.Limit())
	}
}

func TestBuildRequest(t *testing.T) {
	lex := lexicon.Default()
	ruj, _ := lex.Match("ruj")

	tests := []struct {
		name       string
		in         intent.Intent
		wantSort   bool
		wantShould int
		wantNone   bool
	}{
		{"top rated", intent.NewTopRated(), true, 0, false},
		{"category", intent.NewCategoryBrowse(ruj), false, 2, false},
		{"generic", intent.NewGenericBrowse(ruj), false, 2, false},
		{"free text", intent.NewFreeTextSearch([]string{"nyx"}), false, 2, false},
		{"free text empty", intent.NewFreeTextSearch(nil), false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequest(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (req.Sort() != nil) != tt.wantSort {
				t.Errorf("sort = %v, want sorted=%v", req.Sort(), tt.wantSort)
			}
			if len(req.Filters().Should()) != tt.wantShould {
				t.Errorf("should = %d, want %d", len(req.Filters().Should()), tt.wantShould)
			}
			if req.Filters().MatchesNothing() != tt.wantNone {
				t.Errorf("matches nothing = %v", req.Filters().MatchesNothing())
			}
			if req.Limit() != intent.DefaultLimit {
				t.Errorf("limit = %d", req.Limit())
			}
		})
	}
}

func TestBuildRequest_UnknownIntent(t *testing.T) {
	if _, err := BuildRequest(intent.Intent{}); err == nil {
		t.Fatal("expected error for zero intent")
	}
}
