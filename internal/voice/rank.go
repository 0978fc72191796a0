package voice

import (
	"sort"

	"github.com/jonesrussell/brand-voice/internal/domain"
)

// Rank orders matches by descending confidence, drops entries at or below
// the threshold, removes duplicate style labels keeping the first (highest)
// occurrence, and truncates to limit. The input slice is not modified.
func Rank(matches []domain.PatternMatch, threshold float64, limit int) []domain.PatternMatch {
	sorted := make([]domain.PatternMatch, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	ranked := make([]domain.PatternMatch, 0, len(sorted))
	seen := make(map[string]bool)
	for _, m := range sorted {
		if m.Confidence <= threshold {
			continue
		}
		if seen[m.Style] {
			continue
		}
		seen[m.Style] = true
		ranked = append(ranked, m)
		if limit > 0 && len(ranked) >= limit {
			break
		}
	}

	return ranked
}
