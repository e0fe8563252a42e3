package resolve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Deepgram", "deepgram"},
		{"punctuation collapses", "gpt-4.1-mini", "gpt 4 1 mini"},
		{"mixed separators", "Eleven__Labs!!", "eleven labs"},
		{"leading and trailing junk", "  --OpenAI--  ", "openai"},
		{"internal runs", "a   b\t\tc", "a b c"},
		{"digits kept", "nova-3", "nova 3"},
		{"empty", "", ""},
		{"only punctuation", "+++", ""},
		{"unicode stripped", "café", "caf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Deepgram nova-3", "  Open AI!! ", "a+b,c", "日本語 Japanese"}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "Normalize should be idempotent for %q", in)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "customer support", "customer-support"},
		{"model string", "gpt-4.1-mini", "gpt-4-1-mini"},
		{"casing dropped", "English Healthcare Agent", "english-healthcare-agent"},
		{"empty", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Slug(tt.input))
		})
	}
}

func TestSlug_Truncates(t *testing.T) {
	long := strings.Repeat("word ", 40)
	slug := Slug(long)
	require.LessOrEqual(t, len(slug), maxSlugLen)
	require.False(t, strings.HasPrefix(slug, "-"))
	require.False(t, strings.HasSuffix(slug, "-"))
}
