package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stackpick/stackpick/internal/catalog"
	"github.com/stackpick/stackpick/internal/combo"
)

// ValidateRequest checks a fully spelled-out stack against the provider
// directory and the benchmark catalog.
type ValidateRequest struct {
	STTProvider string `mapstructure:"stt_provider"`
	STTModel    string `mapstructure:"stt_model"`
	LLMProvider string `mapstructure:"llm_provider"`
	LLMModel    string `mapstructure:"llm_model"`
	TTSProvider string `mapstructure:"tts_provider"`
	TTSModel    string `mapstructure:"tts_model"`
}

func (r ValidateRequest) provider(c catalog.Category) string {
	switch c {
	case catalog.CategorySTT:
		return r.STTProvider
	case catalog.CategoryLLM:
		return r.LLMProvider
	default:
		return r.TTSProvider
	}
}

func (r ValidateRequest) model(c catalog.Category) string {
	switch c {
	case catalog.CategorySTT:
		return r.STTModel
	case catalog.CategoryLLM:
		return r.LLMModel
	default:
		return r.TTSModel
	}
}

// ValidateResult reports per-model recognition and the catalog row the stack
// corresponds to, if any.
type ValidateResult struct {
	Result
	Stack *combo.Parsed `json:"stack,omitempty"`
	// UnknownModels lists the categories ("stt", "llm", "tts") whose model
	// string is absent from the provider's known-model list.
	UnknownModels []string `json:"unknown_models,omitempty"`
	Matched       *EntryView `json:"matched,omitempty"`
	// Alternatives lists, per category, the providers actually observed in
	// the catalog. Populated when no row matched.
	Alternatives map[string][]string `json:"alternatives,omitempty"`
}

// Validate resolves the three providers, checks each supplied model against
// the provider's known-model list (unrecognized models are a warning, not an
// error), and looks for an exact catalog match.
func (e *Engine) Validate(req ValidateRequest) ValidateResult {
	var parsed combo.Parsed
	var unknownModels []string

	for _, c := range catalog.Categories {
		input := req.provider(c)
		m, ok := e.resolver.Provider(input)
		if !ok {
			return ValidateResult{Result: errorResult(ReasonUnresolvedProvider,
				fmt.Sprintf("could not resolve %s provider from %q", c, input),
				catalog.ProviderNames())}
		}

		model := strings.TrimSpace(req.model(c))
		if info, found := catalog.ProviderByName(m.Canonical); found && model != "" && !info.KnowsModel(model) {
			unknownModels = append(unknownModels, string(c))
		}

		pm := combo.ProviderModel{Provider: m.Canonical, Model: model}
		switch c {
		case catalog.CategorySTT:
			parsed.STT = pm
		case catalog.CategoryLLM:
			parsed.LLM = pm
		case catalog.CategoryTTS:
			parsed.TTS = pm
		}
	}

	result := ValidateResult{
		Result:        okResult(),
		Stack:         &parsed,
		UnknownModels: unknownModels,
	}
	if len(unknownModels) > 0 {
		result.Status = StatusWarning
		result.Reason = ReasonUnsupportedModel
		result.Message = fmt.Sprintf("model(s) not in the provider's known list: %s",
			strings.Join(unknownModels, ", "))
	}

	matches := combo.MatchEntries(parsed, e.entries)
	if len(matches) > 0 {
		view := entryView(matches[0])
		result.Matched = &view
		return result
	}

	// No catalog row: suggest the providers actually benchmarked per
	// category. A soft model warning still outranks the missing row.
	result.Alternatives = e.observedProviders()
	if len(unknownModels) == 0 {
		result.Status = StatusError
		result.Reason = ReasonNoMatchingCombo
		result.Message = fmt.Sprintf("no benchmarked rows match %q", parsed.Describe())
	}
	return result
}

// observedProviders collects the distinct providers per category that appear
// in at least one benchmark row.
func (e *Engine) observedProviders() map[string][]string {
	out := make(map[string][]string, len(catalog.Categories))
	for _, c := range catalog.Categories {
		seen := map[string]bool{}
		var names []string
		for _, entry := range e.entries {
			if p := entry.Provider(c); !seen[p] {
				seen[p] = true
				names = append(names, p)
			}
		}
		sort.Strings(names)
		out[string(c)] = names
	}
	return out
}
