package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The benchmark table may only reference providers, models, and languages
// the other tables know about. Everything downstream assumes this holds.
func TestEntries_ReferentialIntegrity(t *testing.T) {
	languages := make(map[string]bool, len(Languages))
	for _, l := range Languages {
		languages[l] = true
	}

	for i, e := range Entries {
		for _, c := range Categories {
			info, ok := ProviderByName(e.Provider(c))
			require.True(t, ok, "row %d: unknown %s provider %q", i, c, e.Provider(c))
			require.Equal(t, c, info.Category, "row %d: %q used outside its category", i, e.Provider(c))
			require.True(t, info.KnowsModel(e.Model(c)),
				"row %d: %q does not list model %q", i, info.Name, e.Model(c))
		}
		require.NotEmpty(t, e.Languages, "row %d supports no languages", i)
		for _, l := range e.Languages {
			require.True(t, languages[l], "row %d: unknown language %q", i, l)
		}
		require.Positive(t, e.LatencyMs, "row %d", i)
		require.Greater(t, e.Quality, 0.0, "row %d", i)
		require.Greater(t, e.CostPerMin, 0.0, "row %d", i)
	}
}

func TestEntries_UniqueCombos(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Entries {
		key := e.Combo()
		require.False(t, seen[key], "duplicate benchmark row %q", key)
		seen[key] = true
	}
}

func TestProviders_NamesUniqueAndCategorized(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Providers {
		lower := strings.ToLower(p.Name)
		require.False(t, seen[lower], "duplicate provider %q", p.Name)
		seen[lower] = true
		require.Contains(t, Categories, p.Category, "provider %q", p.Name)
		require.NotEmpty(t, p.Models, "provider %q lists no models", p.Name)
		require.True(t, strings.HasPrefix(p.Homepage, "https://"), "provider %q", p.Name)
	}
}

func TestProviderAliases_KeysAreCanonical(t *testing.T) {
	for canonical := range ProviderAliases {
		_, ok := ProviderByName(canonical)
		require.True(t, ok, "alias key %q is not a provider", canonical)
	}
	for _, p := range Providers {
		_, ok := ProviderAliases[p.Name]
		require.True(t, ok, "provider %q missing from the alias table", p.Name)
	}
}

func TestProviderByName(t *testing.T) {
	info, ok := ProviderByName("deepgram")
	require.True(t, ok)
	require.Equal(t, "Deepgram", info.Name)

	_, ok = ProviderByName("whisperific")
	require.False(t, ok)
}

func TestProvidersInCategory(t *testing.T) {
	for _, c := range Categories {
		list := ProvidersInCategory(c)
		require.NotEmpty(t, list)
		for _, p := range list {
			require.Equal(t, c, p.Category)
		}
	}
}

func TestLanguageAliases_KeysAreCanonical(t *testing.T) {
	canonical := make(map[string]bool, len(Languages))
	for _, l := range Languages {
		canonical[l] = true
	}
	for key, aliases := range LanguageAliases {
		require.True(t, canonical[key], "alias key %q is not a supported language", key)
		for _, a := range aliases {
			require.GreaterOrEqual(t, len(a), 3, "alias %q for %s is too short to resolve", a, key)
		}
	}
}

func TestUseCaseWeights(t *testing.T) {
	require.Equal(t, ScoreWeights{Latency: 50, Quality: 100, Cost: 40}, UseCaseWeights("healthcare"))
	require.Equal(t, DefaultUseCaseWeights, UseCaseWeights("no-such-use-case"))

	for _, uc := range UseCases {
		require.Positive(t, uc.Weights.Sum(), "use case %q has zero weights", uc.Key)
		require.Equal(t, uc.Key, strings.ToLower(uc.Key), "use-case keys are kebab-case")
	}
}

func TestBenchmarkEntry_Accessors(t *testing.T) {
	e := Entries[0]
	require.Equal(t, e.STTProvider, e.Provider(CategorySTT))
	require.Equal(t, e.LLMModel, e.Model(CategoryLLM))
	require.Equal(t, e.TTSProvider, e.Provider(CategoryTTS))

	require.True(t, e.SupportsLanguage("English"))
	require.False(t, e.SupportsLanguage("english"))
	require.False(t, e.SupportsLanguage("Klingon"))
}

func TestFrameworkCompatible(t *testing.T) {
	pipecat, ok := FrameworkByName("pipecat")
	require.True(t, ok)
	nextjs, ok := FrameworkByName("NEXTJS")
	require.True(t, ok)
	_, ok = FrameworkByName("django")
	require.False(t, ok)

	// Pipecat's empty allow-sets accept every row.
	for _, e := range Entries {
		require.True(t, pipecat.Compatible(e))
	}

	require.True(t, nextjs.Compatible(BenchmarkEntry{
		STTProvider: "Deepgram", LLMProvider: "Anthropic", TTSProvider: "Rime",
	}))
	require.False(t, nextjs.Compatible(BenchmarkEntry{
		STTProvider: "Deepgram", LLMProvider: "Anthropic", TTSProvider: "Cartesia",
	}))
}
