package resolve

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/stackpick/stackpick/internal/catalog"
)

// maxLanguageSuggestions bounds the nearest-language list attached to
// unsupported-language errors.
const maxLanguageSuggestions = 5

// NearestLanguages ranks the supported languages by Jaro-Winkler similarity
// to the (unresolvable) input and returns up to max of them, best first.
// Ties fall back to catalog order so suggestions are deterministic.
func NearestLanguages(input string, max int) []string {
	if max <= 0 || max > maxLanguageSuggestions {
		max = maxLanguageSuggestions
	}
	norm := Normalize(input)

	type scored struct {
		lang  string
		score float64
		order int
	}
	ranked := make([]scored, 0, len(catalog.Languages))
	for i, lang := range catalog.Languages {
		score := matchr.JaroWinkler(norm, strings.ToLower(lang), false)
		ranked = append(ranked, scored{lang: lang, score: score, order: i})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].score != ranked[b].score {
			return ranked[a].score > ranked[b].score
		}
		return ranked[a].order < ranked[b].order
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.lang)
	}
	return out
}
