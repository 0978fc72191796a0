// Package voice implements rule-based brand voice pattern matching.
// catalog.go builds an Aho-Corasick automaton per rule catalog for
// single-pass keyword scanning.
package voice

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/brand-voice/internal/domain"
)

// StyleRule describes one brand voice style as plain data: a name, the
// keywords that signal it, and example clue phrases that strengthen it.
type StyleRule struct {
	Name         string
	Keywords     []string
	ExampleClues []string
}

// Catalog is an immutable set of style rules compiled for matching.
// Catalogs are built once at process start and safely shared across
// concurrent extractions without synchronization.
type Catalog struct {
	name      string
	rules     []StyleRule
	threshold float64
	limit     int
	matcher   *ahocorasick.Matcher
	terms     []string
}

// NewCatalog compiles rules into a matchable catalog. The threshold and
// limit are applied by Rank after matching.
func NewCatalog(name string, rules []StyleRule, threshold float64, limit int) *Catalog {
	c := &Catalog{
		name:      name,
		rules:     rules,
		threshold: threshold,
		limit:     limit,
	}

	seen := make(map[string]bool)
	for _, rule := range rules {
		for _, term := range rule.Keywords {
			c.addTerm(term, seen)
		}
		for _, term := range rule.ExampleClues {
			c.addTerm(term, seen)
		}
	}

	if len(c.terms) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(c.terms)
	}

	return c
}

func (c *Catalog) addTerm(term string, seen map[string]bool) {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" || seen[normalized] {
		return
	}
	seen[normalized] = true
	c.terms = append(c.terms, normalized)
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Threshold returns the minimum confidence for ranked output.
func (c *Catalog) Threshold() float64 { return c.threshold }

// Limit returns the maximum number of ranked patterns.
func (c *Catalog) Limit() int { return c.limit }

// Rules returns the rule table.
func (c *Catalog) Rules() []StyleRule { return c.rules }

// Match scores every rule against the corpus and returns one PatternMatch
// per rule with at least one keyword hit. Matching is case-insensitive
// substring containment; confidence is the matched-keyword ratio with a
// bonus when any example clue appears. Results are unranked; apply Rank
// for thresholding, deduplication and truncation.
func (c *Catalog) Match(corpus string) []domain.PatternMatch {
	if c.matcher == nil || corpus == "" {
		return nil
	}

	lower := strings.ToLower(corpus)
	present := make(map[string]bool)
	for _, idx := range c.matcher.Match([]byte(lower)) {
		if idx < len(c.terms) {
			present[c.terms[idx]] = true
		}
	}

	matches := make([]domain.PatternMatch, 0, len(c.rules))
	for _, rule := range c.rules {
		if len(rule.Keywords) == 0 {
			continue
		}

		matchedKeywords := matchedTerms(rule.Keywords, present)
		if len(matchedKeywords) == 0 {
			continue
		}

		confidence := float64(len(matchedKeywords)) / float64(len(rule.Keywords))

		matchedClues := matchedTerms(rule.ExampleClues, present)
		if len(matchedClues) > 0 {
			confidence += exampleClueBonus
		}
		confidence = clampConfidence(confidence)

		examples := make([]string, 0, len(matchedKeywords)+len(matchedClues))
		examples = append(examples, matchedKeywords...)
		examples = append(examples, matchedClues...)

		matches = append(matches, domain.PatternMatch{
			Style:      rule.Name,
			Confidence: confidence,
			Source:     rule.Name,
			Examples:   examples,
		})
	}

	return matches
}

// matchedTerms returns the terms present in the corpus, preserving rule order.
func matchedTerms(terms []string, present map[string]bool) []string {
	var matched []string
	for _, term := range terms {
		if present[strings.ToLower(strings.TrimSpace(term))] {
			matched = append(matched, term)
		}
	}
	return matched
}

func clampConfidence(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
