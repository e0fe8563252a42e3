package catalog

import "strings"

// Framework is a scaffold target. Allowed holds, per category, the providers
// the framework ships first-party plugins for; an empty set means any
// provider is accepted.
type Framework struct {
	Name    string                `json:"name"`
	Display string                `json:"display"`
	Allowed map[Category][]string `json:"allowed"`
}

// Frameworks lists the supported scaffold targets.
var Frameworks = []Framework{
	{
		Name:    "pipecat",
		Display: "Pipecat voice agent",
		Allowed: map[Category][]string{
			CategorySTT: nil, // any
			CategoryLLM: nil,
			CategoryTTS: nil,
		},
	},
	{
		Name:    "nextjs",
		Display: "Next.js web app",
		Allowed: map[Category][]string{
			CategorySTT: {"Deepgram", "AssemblyAI"},
			CategoryLLM: {"OpenAI", "Anthropic", "Google"},
			CategoryTTS: {"ElevenLabs", "Rime"},
		},
	},
}

// FrameworkByName returns the framework record for name, compared
// case-insensitively.
func FrameworkByName(name string) (Framework, bool) {
	for _, f := range Frameworks {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Framework{}, false
}

// Compatible reports whether every category's allow-set is empty or contains
// the entry's provider for that category.
func (f Framework) Compatible(e BenchmarkEntry) bool {
	for _, c := range Categories {
		allowed := f.Allowed[c]
		if len(allowed) == 0 {
			continue
		}
		ok := false
		for _, name := range allowed {
			if strings.EqualFold(name, e.Provider(c)) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
