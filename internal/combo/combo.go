// Package combo parses compound "STT + LLM + TTS" stack strings into
// resolved provider/model tuples and matches them against the benchmark
// catalog.
package combo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/stackpick/stackpick/internal/catalog"
	"github.com/stackpick/stackpick/internal/resolve"
)

// ProviderModel is one parsed segment: a canonical provider plus the model
// text exactly as the user typed it. Model is empty for provider-only input.
type ProviderModel struct {
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
}

// Parsed is a fully resolved combo in STT, LLM, TTS order.
type Parsed struct {
	STT ProviderModel `json:"stt"`
	LLM ProviderModel `json:"llm"`
	TTS ProviderModel `json:"tts"`
}

// Segment returns the parsed tuple for one category.
func (p Parsed) Segment(c catalog.Category) ProviderModel {
	switch c {
	case catalog.CategorySTT:
		return p.STT
	case catalog.CategoryLLM:
		return p.LLM
	default:
		return p.TTS
	}
}

// Describe renders the combo back into parseable "a + b + c" form.
func (p Parsed) Describe() string {
	parts := make([]string, 0, 3)
	for _, c := range catalog.Categories {
		s := p.Segment(c)
		if s.Model != "" {
			parts = append(parts, s.Provider+" "+s.Model)
		} else {
			parts = append(parts, s.Provider)
		}
	}
	return strings.Join(parts, " + ")
}

// SegmentCountError reports a combo that did not split into exactly three
// non-empty segments.
type SegmentCountError struct {
	Input string
	Count int
}

func (e *SegmentCountError) Error() string {
	return fmt.Sprintf("combo %q has %d segment(s), want exactly 3 (STT + LLM + TTS)", e.Input, e.Count)
}

// UnresolvedSegmentError reports a segment whose provider matched nothing.
type UnresolvedSegmentError struct {
	Segment  string
	Category catalog.Category
}

func (e *UnresolvedSegmentError) Error() string {
	return fmt.Sprintf("could not resolve a %s provider from %q", e.Category, e.Segment)
}

// separators splits on "+", ",", or "->" with surrounding whitespace.
var separators = regexp.MustCompile(`\s*(?:\+|,|->)\s*`)

// Parse splits input on the combo separators and resolves each segment.
// Exactly three non-empty segments are required, in STT, LLM, TTS order.
func Parse(r *resolve.Resolver, input string) (Parsed, error) {
	var segments []string
	for _, seg := range separators.Split(input, -1) {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) != 3 {
		return Parsed{}, &SegmentCountError{Input: input, Count: len(segments)}
	}

	var parsed Parsed
	for i, c := range catalog.Categories {
		pm, ok := ParseSegment(r, segments[i])
		if !ok {
			return Parsed{}, &UnresolvedSegmentError{Segment: segments[i], Category: c}
		}
		switch c {
		case catalog.CategorySTT:
			parsed.STT = pm
		case catalog.CategoryLLM:
			parsed.LLM = pm
		case catalog.CategoryTTS:
			parsed.TTS = pm
		}
	}
	return parsed, nil
}

// ParseSegment resolves one "provider [model]" segment. When text remains
// after the matched alias, the model is recovered from the original input so
// its casing and punctuation survive ("gpt-4.1-mini", not "gpt 4 1 mini").
func ParseSegment(r *resolve.Resolver, segment string) (ProviderModel, bool) {
	m, ok := r.Provider(segment)
	if !ok {
		return ProviderModel{}, false
	}

	// A remainder only exists when the alias was a whole leading phrase of
	// the input; partially typed provider names ("assem") have none.
	normalized := resolve.Normalize(segment)
	remainder := ""
	if strings.HasPrefix(normalized, m.Alias) {
		remainder = strings.TrimSpace(strings.TrimPrefix(normalized, m.Alias))
	}
	if remainder == "" {
		return ProviderModel{Provider: m.Canonical}, true
	}

	// The alias spanned len(fields(alias)) words of the normalized input;
	// take the words after that span from the original text.
	aliasWords := len(strings.Fields(m.Alias))
	originalWords := strings.Fields(segment)
	model := ""
	if len(originalWords) > aliasWords {
		model = strings.Join(originalWords[aliasWords:], " ")
	}
	if model == "" {
		model = remainder
	}
	return ProviderModel{Provider: m.Canonical, Model: model}, true
}

// MatchEntries filters entries to rows matching the parsed combo: for each
// category the providers must match canonically, and when the parsed segment
// carries a model it must equal the row's model after both are slugged.
// Multiple matches are a legitimate outcome for provider-only input.
func MatchEntries(p Parsed, entries []catalog.BenchmarkEntry) []catalog.BenchmarkEntry {
	var out []catalog.BenchmarkEntry
	for _, e := range entries {
		if matchesEntry(p, e) {
			out = append(out, e)
		}
	}
	return out
}

func matchesEntry(p Parsed, e catalog.BenchmarkEntry) bool {
	for _, c := range catalog.Categories {
		seg := p.Segment(c)
		if !strings.EqualFold(seg.Provider, e.Provider(c)) {
			return false
		}
		if seg.Model != "" && resolve.Slug(seg.Model) != resolve.Slug(e.Model(c)) {
			return false
		}
	}
	return true
}
