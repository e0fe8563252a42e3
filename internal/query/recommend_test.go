package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackpick/stackpick/internal/catalog"
)

func TestRecommend_EnglishCustomerSupport(t *testing.T) {
	e := New()

	res := e.Recommend(RecommendRequest{Language: "english", UseCase: "customer support"})
	require.Equal(t, StatusOK, res.Status)
	require.Equal(t, "English", res.Language)
	require.Equal(t, "customer-support", res.UseCase)
	require.Equal(t, "balanced", string(res.OptimizeFor))
	require.Equal(t, &catalog.ScoreWeights{Latency: 70, Quality: 80, Cost: 60}, res.Weights)

	require.Len(t, res.Stacks, DefaultResults)
	require.NotNil(t, res.TopPick)
	require.Equal(t, res.Stacks[0], *res.TopPick)
	require.Equal(t, 1, res.TopPick.Rank)
	require.Equal(t, "Deepgram nova-3 + Groq llama-3.3-70b + Cartesia sonic-turbo", res.TopPick.Combo)
	require.Equal(t, 73.3, res.TopPick.Score)

	// Scores are non-increasing down the list.
	for i := 1; i < len(res.Stacks); i++ {
		require.GreaterOrEqual(t, res.Stacks[i-1].Score, res.Stacks[i].Score)
		require.Equal(t, i+1, res.Stacks[i].Rank)
	}
}

func TestRecommend_LanguageFiltering(t *testing.T) {
	e := New()

	res := e.Recommend(RecommendRequest{Language: "thai", UseCase: "healthcare"})
	require.Equal(t, StatusOK, res.Status)
	require.Equal(t, "Thai", res.Language)
	for _, s := range res.Stacks {
		require.Contains(t, s.Languages, "Thai", "stack %q does not support Thai", s.Combo)
	}
	require.Equal(t, "Deepgram nova-3 + OpenAI gpt-4.1-mini + Cartesia sonic-3", res.TopPick.Combo)
}

func TestRecommend_UnsupportedLanguage(t *testing.T) {
	e := New()

	res := e.Recommend(RecommendRequest{Language: "Nigerian"})
	require.Equal(t, StatusError, res.Status)
	require.Equal(t, ReasonUnsupportedLanguage, res.Reason)
	require.Contains(t, res.Message, "Nigerian")
	require.Len(t, res.Suggestions, 5)
	require.Nil(t, res.TopPick)
	require.Empty(t, res.Stacks)
}

func TestRecommend_UnknownUseCasePassesThrough(t *testing.T) {
	e := New()

	res := e.Recommend(RecommendRequest{Language: "english", UseCase: "submarine racing"})
	require.Equal(t, StatusOK, res.Status)
	require.Equal(t, "submarine racing", res.UseCase)
	require.Equal(t, &catalog.DefaultUseCaseWeights, res.Weights)
}

func TestRecommend_ObjectiveOverridesUseCase(t *testing.T) {
	e := New()

	res := e.Recommend(RecommendRequest{Language: "english", UseCase: "healthcare", OptimizeFor: "latency"})
	require.Equal(t, StatusOK, res.Status)
	require.Equal(t, "latency", string(res.OptimizeFor))
	require.Equal(t, &catalog.ScoreWeights{Latency: 100, Quality: 30, Cost: 30}, res.Weights)
	require.Equal(t, 160, res.TopPick.LatencyMs)
}

func TestRecommend_UnknownObjectiveFallsBackToBalanced(t *testing.T) {
	e := New()

	res := e.Recommend(RecommendRequest{Language: "english", OptimizeFor: "vibes"})
	require.Equal(t, StatusOK, res.Status)
	require.Equal(t, "balanced", string(res.OptimizeFor))
}

func TestRecommend_MaxResultsClamped(t *testing.T) {
	e := New()

	tests := []struct {
		name    string
		request int
		want    int
	}{
		{"zero defaults", 0, DefaultResults},
		{"negative clamps to min", -3, MinResults},
		{"within range", 2, 2},
		{"above max clamps", 50, MaxResults},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Recommend(RecommendRequest{Language: "english", MaxResults: tt.request})
			require.Equal(t, StatusOK, res.Status)
			require.Len(t, res.Stacks, tt.want)
		})
	}
}

func TestRecommend_NoStacksForLanguage(t *testing.T) {
	e := New(WithEntries([]catalog.BenchmarkEntry{
		{
			STTProvider: "Deepgram", STTModel: "nova-3",
			LLMProvider: "OpenAI", LLMModel: "gpt-4.1-mini",
			TTSProvider: "Cartesia", TTSModel: "sonic-3",
			LatencyMs: 210, Quality: 4.6, CostPerMin: 0.0095,
			Languages: []string{"English"},
		},
	}))

	res := e.Recommend(RecommendRequest{Language: "korean"})
	require.Equal(t, StatusError, res.Status)
	require.Equal(t, ReasonNoMatchingCombo, res.Reason)
}
