package catalog

import (
	"sort"
	"strings"
)

// ProviderInfo describes one provider in the directory. Name is the canonical
// spelling; all lookups go through the alias table in ProviderAliases.
type ProviderInfo struct {
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Homepage  string   `json:"homepage"`
	Models    []string `json:"models"`
	Strengths string   `json:"strengths"`
}

// KnowsModel reports whether model is in the provider's known-model list,
// compared case-insensitively.
func (p ProviderInfo) KnowsModel(model string) bool {
	for _, m := range p.Models {
		if strings.EqualFold(m, model) {
			return true
		}
	}
	return false
}

// Providers is the full provider directory, grouped by category. Canonical
// names are globally unique case-insensitively.
var Providers = []ProviderInfo{
	{
		Name:      "Deepgram",
		Category:  CategorySTT,
		Homepage:  "https://deepgram.com",
		Models:    []string{"nova-3", "nova-2"},
		Strengths: "Low-latency streaming transcription with strong accuracy on noisy audio",
	},
	{
		Name:      "AssemblyAI",
		Category:  CategorySTT,
		Homepage:  "https://www.assemblyai.com",
		Models:    []string{"universal-streaming", "universal"},
		Strengths: "High-accuracy transcription with rich audio intelligence add-ons",
	},
	{
		Name:      "Speechmatics",
		Category:  CategorySTT,
		Homepage:  "https://www.speechmatics.com",
		Models:    []string{"ursa-2"},
		Strengths: "Broad language coverage and robust accented-speech handling",
	},
	{
		Name:      "Gladia",
		Category:  CategorySTT,
		Homepage:  "https://www.gladia.io",
		Models:    []string{"solaria-1"},
		Strengths: "Fast multilingual streaming with code-switching support",
	},
	{
		Name:      "OpenAI",
		Category:  CategoryLLM,
		Homepage:  "https://openai.com",
		Models:    []string{"gpt-4.1", "gpt-4.1-mini", "gpt-4o-mini"},
		Strengths: "Strong general reasoning with reliable function calling",
	},
	{
		Name:      "Anthropic",
		Category:  CategoryLLM,
		Homepage:  "https://www.anthropic.com",
		Models:    []string{"claude-sonnet-4-5", "claude-haiku-4-5"},
		Strengths: "Careful instruction following and long-context conversations",
	},
	{
		Name:      "Google",
		Category:  CategoryLLM,
		Homepage:  "https://ai.google.dev",
		Models:    []string{"gemini-2.5-flash", "gemini-2.5-flash-lite"},
		Strengths: "Fast multimodal models at aggressive price points",
	},
	{
		Name:      "Groq",
		Category:  CategoryLLM,
		Homepage:  "https://groq.com",
		Models:    []string{"llama-3.3-70b"},
		Strengths: "Extremely fast open-model inference on custom hardware",
	},
	{
		Name:      "Cartesia",
		Category:  CategoryTTS,
		Homepage:  "https://cartesia.ai",
		Models:    []string{"sonic-3", "sonic-2", "sonic-turbo"},
		Strengths: "Very low time-to-first-audio with natural conversational prosody",
	},
	{
		Name:      "ElevenLabs",
		Category:  CategoryTTS,
		Homepage:  "https://elevenlabs.io",
		Models:    []string{"eleven-turbo-v2-5", "eleven-flash-v2-5"},
		Strengths: "Best-in-class voice quality and a large voice library",
	},
	{
		Name:      "Rime",
		Category:  CategoryTTS,
		Homepage:  "https://rime.ai",
		Models:    []string{"mistv2", "arcana"},
		Strengths: "Cheap, fast synthesis tuned for high-volume phone agents",
	},
}

// ProviderAliases maps canonical provider names to the lowercase alias
// strings accepted on input. The canonical name itself is always implied and
// does not need to be listed.
var ProviderAliases = map[string][]string{
	"Deepgram":     {"deep gram", "dg"},
	"AssemblyAI":   {"assembly ai", "assembly", "aai"},
	"Speechmatics": {"speech matics"},
	"Gladia":       {},
	"OpenAI":       {"open ai", "oai", "chatgpt", "gpt"},
	"Anthropic":    {"claude"},
	"Google":       {"gemini", "google ai"},
	"Groq":         {},
	"Cartesia":     {"cartesia ai"},
	"ElevenLabs":   {"eleven labs", "11labs", "eleven"},
	"Rime":         {"rime ai"},
}

// ProviderByName returns the directory record for a canonical provider name,
// compared case-insensitively.
func ProviderByName(name string) (ProviderInfo, bool) {
	for _, p := range Providers {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return ProviderInfo{}, false
}

// ProvidersInCategory returns the directory records for one category,
// preserving directory order.
func ProvidersInCategory(c Category) []ProviderInfo {
	var out []ProviderInfo
	for _, p := range Providers {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// ProviderNames returns every canonical provider name sorted alphabetically.
// Used for "unresolved provider" error payloads.
func ProviderNames() []string {
	names := make([]string, 0, len(Providers))
	for _, p := range Providers {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
