//nolint:testpackage // Testing internal voice requires same package access
package voice

import (
	"testing"

	"github.com/jonesrussell/brand-voice/internal/domain"
)

func TestRank_SortsDescending(t *testing.T) {
	matches := []domain.PatternMatch{
		{Style: "a", Confidence: 0.4},
		{Style: "b", Confidence: 0.9},
		{Style: "c", Confidence: 0.6},
	}

	ranked := Rank(matches, 0.3, 5)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 results, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Confidence > ranked[i-1].Confidence {
			t.Errorf("result not sorted at index %d: %f > %f", i, ranked[i].Confidence, ranked[i-1].Confidence)
		}
	}
	if ranked[0].Style != "b" {
		t.Errorf("expected b first, got %s", ranked[0].Style)
	}
}

func TestRank_DropsAtOrBelowThreshold(t *testing.T) {
	matches := []domain.PatternMatch{
		{Style: "keep", Confidence: 0.31},
		{Style: "boundary", Confidence: 0.3},
		{Style: "drop", Confidence: 0.1},
	}

	ranked := Rank(matches, 0.3, 5)

	if len(ranked) != 1 {
		t.Fatalf("expected 1 result, got %d", len(ranked))
	}
	if ranked[0].Style != "keep" {
		t.Errorf("expected keep, got %s", ranked[0].Style)
	}
}

func TestRank_DeduplicatesByStyle(t *testing.T) {
	matches := []domain.PatternMatch{
		{Style: "dup", Confidence: 0.5, Source: "first"},
		{Style: "dup", Confidence: 0.9, Source: "second"},
		{Style: "other", Confidence: 0.7},
	}

	ranked := Rank(matches, 0.3, 5)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	// Highest-confidence duplicate survives after sorting.
	if ranked[0].Style != "dup" || ranked[0].Source != "second" {
		t.Errorf("expected highest dup first, got %+v", ranked[0])
	}
	seen := make(map[string]int)
	for _, m := range ranked {
		seen[m.Style]++
	}
	for style, count := range seen {
		if count > 1 {
			t.Errorf("style %s appears %d times after dedup", style, count)
		}
	}
}

func TestRank_Truncates(t *testing.T) {
	matches := []domain.PatternMatch{
		{Style: "a", Confidence: 0.9},
		{Style: "b", Confidence: 0.8},
		{Style: "c", Confidence: 0.7},
	}

	ranked := Rank(matches, 0.3, 2)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	matches := []domain.PatternMatch{
		{Style: "a", Confidence: 0.1},
		{Style: "b", Confidence: 0.9},
	}

	Rank(matches, 0.3, 5)

	if matches[0].Style != "a" || matches[1].Style != "b" {
		t.Error("input slice was reordered")
	}
}
