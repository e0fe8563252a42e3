package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackpick/stackpick/internal/catalog"
)

func testIndex() *AliasIndex {
	return NewAliasIndex(map[string][]string{
		"OpenAI":     {"open ai", "oai", "chatgpt", "gpt"},
		"ElevenLabs": {"eleven labs", "11labs", "eleven"},
		"Deepgram":   {"deep gram"},
	})
}

func TestAliasIndex_LongestAliasFirst(t *testing.T) {
	ix := testIndex()
	for i := 1; i < len(ix.entries); i++ {
		prev, cur := ix.entries[i-1], ix.entries[i]
		if len(prev.alias) == len(cur.alias) {
			require.Less(t, prev.alias, cur.alias)
			continue
		}
		require.Greater(t, len(prev.alias), len(cur.alias))
	}
}

func TestAliasIndex_Lookup(t *testing.T) {
	ix := testIndex()

	tests := []struct {
		name      string
		input     string
		canonical string
		ok        bool
	}{
		{"exact canonical", "OpenAI", "OpenAI", true},
		{"exact alias", "eleven labs", "ElevenLabs", true},
		{"numeric alias", "11labs", "ElevenLabs", true},
		{"partially typed", "elev", "ElevenLabs", true},
		{"alias plus trailing model", "openai gpt-4.1-mini", "OpenAI", true},
		{"spaced alias plus model", "open ai gpt-4o", "OpenAI", true},
		{"too short", "el", "", false},
		{"too short after normalizing", "+ai", "", false},
		{"unknown", "whisperific", "", false},
		{"trailing text without space boundary", "openaigpt", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := ix.Lookup(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.canonical, m.Canonical)
			}
		})
	}
}

// "open ai" must win over "oai"/"gpt" when the input spells it out, and the
// matched alias must be reported so callers can split off model text.
func TestAliasIndex_ReportsMatchedAlias(t *testing.T) {
	ix := testIndex()

	m, ok := ix.Lookup("open ai gpt-4.1-mini")
	require.True(t, ok)
	require.Equal(t, "OpenAI", m.Canonical)
	require.Equal(t, "open ai", m.Alias)

	m, ok = ix.Lookup("OpenAI")
	require.True(t, ok)
	require.Equal(t, "openai", m.Alias)
}

func TestAliasIndex_LookupExact(t *testing.T) {
	ix := testIndex()

	_, ok := ix.LookupExact("open ai extra words")
	require.False(t, ok)

	m, ok := ix.LookupExact("CHATGPT")
	require.True(t, ok)
	require.Equal(t, "OpenAI", m.Canonical)
}

func TestAliasIndex_Canonicals(t *testing.T) {
	ix := testIndex()
	require.Equal(t, []string{"Deepgram", "ElevenLabs", "OpenAI"}, ix.Canonicals())
}

func TestResolver_Provider(t *testing.T) {
	r := New()

	tests := []struct {
		input     string
		canonical string
		ok        bool
	}{
		{"deepgram", "Deepgram", true},
		{"Deep Gram", "Deepgram", true},
		{"assembly", "AssemblyAI", true},
		{"assem", "AssemblyAI", true},
		{"claude", "Anthropic", true},
		{"gemini", "Google", true},
		{"11labs", "ElevenLabs", true},
		{"nova-3", "", false},
		{"xy", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, ok := r.Provider(tt.input)
			require.Equal(t, tt.ok, ok, "input %q", tt.input)
			if tt.ok {
				require.Equal(t, tt.canonical, m.Canonical)
			}
		})
	}
}

func TestResolver_Language(t *testing.T) {
	r := New()

	tests := []struct {
		input     string
		canonical string
		ok        bool
	}{
		{"english", "English", true},
		{"ENGLISH", "English", true},
		{"jap", "Japanese", true},
		{"jpn", "Japanese", true},
		{"nihongo", "Japanese", true},
		{"chinese", "Mandarin", true},
		{"espanol", "Spanish", true},
		{"Nigerian", "", false},
		{"en", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, ok := r.Language(tt.input)
			require.Equal(t, tt.ok, ok, "input %q", tt.input)
			if tt.ok {
				require.Equal(t, tt.canonical, m.Canonical)
			}
		})
	}
}

func TestResolver_UseCase(t *testing.T) {
	r := New()

	tests := []struct {
		input string
		key   string
		ok    bool
	}{
		{"customer-support", "customer-support", true},
		{"customer support", "customer-support", true},
		{"call center", "customer-support", true},
		{"telehealth", "healthcare", true},
		{"legal", "legal", true},
		{"npc", "gaming", true},
		{"quantum basket weaving", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, ok := r.UseCase(tt.input)
			require.Equal(t, tt.ok, ok, "input %q", tt.input)
			if tt.ok {
				require.Equal(t, tt.key, key)
			}
		})
	}
}

func TestNearestLanguages(t *testing.T) {
	got := NearestLanguages("Japaneese", 3)
	require.Len(t, got, 3)
	require.Equal(t, "Japanese", got[0])

	// Every suggestion must be a supported language.
	supported := make(map[string]bool)
	for _, l := range catalog.Languages {
		supported[l] = true
	}
	for _, s := range NearestLanguages("Nigerian", 0) {
		require.True(t, supported[s], "suggestion %q not in catalog", s)
	}
}

func TestNearestLanguages_Bounded(t *testing.T) {
	require.Len(t, NearestLanguages("x", 0), maxLanguageSuggestions)
	require.Len(t, NearestLanguages("x", 100), maxLanguageSuggestions)
	require.Len(t, NearestLanguages("x", 2), 2)
}
