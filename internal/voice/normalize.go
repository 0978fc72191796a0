package voice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonesrussell/brand-voice/internal/domain"
)

// maxFlattenDepth bounds recursion into scraped payloads. Structures deeper
// than this contribute nothing rather than risking runaway recursion.
const maxFlattenDepth = 10

// Flatten reduces acquired content to a single text corpus for matching.
// The switch is exhaustive over the AcquiredContent variants.
func Flatten(content domain.AcquiredContent) string {
	switch c := content.(type) {
	case domain.TextCorpus:
		return string(c)
	case domain.TranscriptTone:
		return c.Transcript
	case domain.StructuredPayload:
		return flattenValue(c.Data, 0)
	default:
		return ""
	}
}

// flattenValue walks a decoded JSON tree and joins its text with spaces.
// Objects prefer a "text" or "content" string field; otherwise their
// string-valued properties are concatenated in key order and non-string
// properties are ignored.
func flattenValue(v any, depth int) string {
	if depth > maxFlattenDepth {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := flattenValue(item, depth+1); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case map[string]any:
		if s, ok := val["text"].(string); ok {
			return s
		}
		if s, ok := val["content"].(string); ok {
			return s
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			if _, ok := val[k].(string); ok {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, val[k].(string))
		}
		return strings.Join(parts, " ")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
