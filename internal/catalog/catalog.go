// Package catalog holds the static benchmark, provider, language, use-case,
// and framework tables the engine ranks against. All data in this package is
// immutable after process start: nothing here is written at runtime, so the
// tables are safe to share across concurrent queries without locking.
package catalog

// Category identifies one of the three pipeline stages a provider serves.
type Category string

const (
	CategorySTT Category = "stt"
	CategoryLLM Category = "llm"
	CategoryTTS Category = "tts"
)

// Categories lists all pipeline stages in pipeline order.
var Categories = []Category{CategorySTT, CategoryLLM, CategoryTTS}

// ScoreWeights is a relative-importance triple over the three ranked
// objectives. Values are weights, not percentages; scoring normalizes by
// their sum.
type ScoreWeights struct {
	Latency float64 `json:"latency"`
	Quality float64 `json:"quality"`
	Cost    float64 `json:"cost"`
}

// Sum returns the normalization denominator for a weighted score.
func (w ScoreWeights) Sum() float64 {
	return w.Latency + w.Quality + w.Cost
}

// BenchmarkEntry is one measured STT+LLM+TTS combination. Entries are
// identified by their full six-field provider/model tuple and never mutated.
type BenchmarkEntry struct {
	STTProvider string `json:"stt_provider"`
	STTModel    string `json:"stt_model"`
	LLMProvider string `json:"llm_provider"`
	LLMModel    string `json:"llm_model"`
	TTSProvider string `json:"tts_provider"`
	TTSModel    string `json:"tts_model"`

	// LatencyMs is the measured median voice-to-voice latency.
	LatencyMs int `json:"latency_ms"`
	// Quality is a 0-5 evaluation score across the full pipeline.
	Quality float64 `json:"quality"`
	// CostPerMin is the combined provider cost in USD per conversation minute.
	CostPerMin float64 `json:"cost_per_min"`
	// MOS is the synthesized-speech mean opinion score; 0 means not measured.
	MOS float64 `json:"mos,omitempty"`

	Languages []string `json:"languages"`
	Note      string   `json:"note,omitempty"`
}

// Provider returns the entry's provider for the given category.
func (e BenchmarkEntry) Provider(c Category) string {
	switch c {
	case CategorySTT:
		return e.STTProvider
	case CategoryLLM:
		return e.LLMProvider
	default:
		return e.TTSProvider
	}
}

// Model returns the entry's model for the given category.
func (e BenchmarkEntry) Model(c Category) string {
	switch c {
	case CategorySTT:
		return e.STTModel
	case CategoryLLM:
		return e.LLMModel
	default:
		return e.TTSModel
	}
}

// SupportsLanguage reports whether lang (canonical form) is in the entry's
// language set. Membership ignores the stored order.
func (e BenchmarkEntry) SupportsLanguage(lang string) bool {
	for _, l := range e.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Combo renders the entry's stack in the canonical
// "STT model + LLM model + TTS model" form accepted back by the combo parser.
func (e BenchmarkEntry) Combo() string {
	return e.STTProvider + " " + e.STTModel + " + " +
		e.LLMProvider + " " + e.LLMModel + " + " +
		e.TTSProvider + " " + e.TTSModel
}
