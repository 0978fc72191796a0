//nolint:testpackage // Testing internal voice requires same package access
package voice

import (
	"strings"
	"testing"
)

func TestCatalog_Match_KeywordRatio(t *testing.T) {
	corpus := "We build innovative products with cutting-edge technology for everyone."

	matches := GenericCatalog.Match(corpus)

	var innovative *matchResult
	for i := range matches {
		if matches[i].Style == "Innovative and Modern" {
			innovative = &matchResult{matches[i].Confidence, matches[i].Examples}
			break
		}
	}
	if innovative == nil {
		t.Fatal("expected Innovative and Modern to match")
	}

	// 3 of 5 keywords, no example clues.
	if innovative.confidence < 0.59 || innovative.confidence > 0.61 {
		t.Errorf("expected confidence ~0.6, got %f", innovative.confidence)
	}

	want := []string{"innovative", "cutting-edge", "technology"}
	if len(innovative.examples) != len(want) {
		t.Fatalf("expected %d examples, got %d: %v", len(want), len(innovative.examples), innovative.examples)
	}
	for i, example := range want {
		if innovative.examples[i] != example {
			t.Errorf("example %d: expected %q, got %q", i, example, innovative.examples[i])
		}
	}
}

type matchResult struct {
	confidence float64
	examples   []string
}

func TestCatalog_Match_ExampleClueBonus(t *testing.T) {
	base := GenericCatalog.Match("our innovative approach")
	boosted := GenericCatalog.Match("our innovative state-of-the-art approach")

	if len(base) != 1 || len(boosted) != 1 {
		t.Fatalf("expected exactly one match each, got %d and %d", len(base), len(boosted))
	}

	diff := boosted[0].Confidence - base[0].Confidence
	if diff < 0.19 || diff > 0.21 {
		t.Errorf("expected clue bonus of 0.2, got %f", diff)
	}

	// Clue lands after keywords in the examples.
	last := boosted[0].Examples[len(boosted[0].Examples)-1]
	if last != "state-of-the-art" {
		t.Errorf("expected clue as final example, got %q", last)
	}
}

func TestCatalog_Match_ConfidenceClamped(t *testing.T) {
	// Every keyword and clue of every rule at once.
	var b strings.Builder
	for _, rule := range GenericCatalog.Rules() {
		b.WriteString(strings.Join(rule.Keywords, " "))
		b.WriteString(" ")
		b.WriteString(strings.Join(rule.ExampleClues, " "))
		b.WriteString(" ")
	}

	matches := GenericCatalog.Match(b.String())
	if len(matches) != len(GenericCatalog.Rules()) {
		t.Fatalf("expected all %d rules to match, got %d", len(GenericCatalog.Rules()), len(matches))
	}
	for _, m := range matches {
		if m.Confidence < 0 || m.Confidence > 1 {
			t.Errorf("confidence out of range for %s: %f", m.Style, m.Confidence)
		}
		if m.Confidence != 1.0 {
			t.Errorf("expected full confidence for %s, got %f", m.Style, m.Confidence)
		}
	}
}

func TestCatalog_Match_CaseInsensitive(t *testing.T) {
	matches := GenericCatalog.Match("INNOVATIVE Technology")
	if len(matches) == 0 {
		t.Fatal("expected case-insensitive match")
	}
}

func TestCatalog_Match_NoKeywords_SkipsRule(t *testing.T) {
	matches := GenericCatalog.Match("nothing relevant in this sentence at all")
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %v", matches)
	}
}

func TestCatalog_Match_EmptyCorpus(t *testing.T) {
	if matches := GenericCatalog.Match(""); len(matches) != 0 {
		t.Errorf("expected no matches for empty corpus, got %d", len(matches))
	}
}

func TestVideoToneCatalog_Match(t *testing.T) {
	corpus := "in this video I will explain and help you learn with a step by step tutorial"

	matches := VideoToneCatalog.Match(corpus)

	found := false
	for _, m := range matches {
		if m.Style == "Educational and Helpful" {
			found = true
			if m.Confidence < confidenceThreshold {
				t.Errorf("expected confidence above threshold, got %f", m.Confidence)
			}
		}
	}
	if !found {
		t.Error("expected Educational and Helpful to match")
	}
}
