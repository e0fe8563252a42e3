package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackpick/stackpick/internal/catalog"
)

func TestValidate_KnownStack(t *testing.T) {
	e := New()

	res := e.Validate(ValidateRequest{
		STTProvider: "deepgram", STTModel: "nova-3",
		LLMProvider: "open ai", LLMModel: "gpt-4.1-mini",
		TTSProvider: "cartesia", TTSModel: "sonic-3",
	})
	require.Equal(t, StatusOK, res.Status)
	require.Empty(t, res.UnknownModels)
	require.NotNil(t, res.Stack)
	require.Equal(t, "OpenAI", res.Stack.LLM.Provider)
	require.NotNil(t, res.Matched)
	require.Equal(t, 210, res.Matched.LatencyMs)
	require.Nil(t, res.Alternatives)
}

func TestValidate_ProviderOnly(t *testing.T) {
	e := New()

	// Models are optional; a provider-only stack matches its first row.
	res := e.Validate(ValidateRequest{
		STTProvider: "deepgram",
		LLMProvider: "groq",
		TTSProvider: "cartesia",
	})
	require.Equal(t, StatusOK, res.Status)
	require.NotNil(t, res.Matched)
	require.Equal(t, 160, res.Matched.LatencyMs)
}

func TestValidate_UnknownModelIsWarning(t *testing.T) {
	e := New()

	res := e.Validate(ValidateRequest{
		STTProvider: "deepgram", STTModel: "nova-3",
		LLMProvider: "openai", LLMModel: "gpt-4.999",
		TTSProvider: "cartesia", TTSModel: "sonic-3",
	})
	require.Equal(t, StatusWarning, res.Status)
	require.Equal(t, ReasonUnsupportedModel, res.Reason)
	require.Equal(t, []string{"llm"}, res.UnknownModels)
	require.Contains(t, res.Message, "llm")

	// The unknown model can't match a row, so alternatives are offered, but
	// the model warning still outranks the missing row.
	require.Nil(t, res.Matched)
	require.NotNil(t, res.Alternatives)
	require.Contains(t, res.Alternatives["llm"], "OpenAI")
}

func TestValidate_MultipleUnknownModels(t *testing.T) {
	e := New()

	res := e.Validate(ValidateRequest{
		STTProvider: "deepgram", STTModel: "nova-99",
		LLMProvider: "openai", LLMModel: "gpt-4.1-mini",
		TTSProvider: "cartesia", TTSModel: "sonic-99",
	})
	require.Equal(t, StatusWarning, res.Status)
	require.Equal(t, []string{"stt", "tts"}, res.UnknownModels)
}

func TestValidate_UnresolvedProvider(t *testing.T) {
	e := New()

	res := e.Validate(ValidateRequest{
		STTProvider: "deepgram",
		LLMProvider: "frobnicator",
		TTSProvider: "cartesia",
	})
	require.Equal(t, StatusError, res.Status)
	require.Equal(t, ReasonUnresolvedProvider, res.Reason)
	require.Contains(t, res.Message, "frobnicator")
	require.Contains(t, res.Message, "llm")
	require.Equal(t, catalog.ProviderNames(), res.Suggestions)
	require.Nil(t, res.Stack)
}

func TestValidate_KnownModelsNoBenchmarkedRow(t *testing.T) {
	e := New()

	// Every model is real, but this exact trio was never benchmarked.
	res := e.Validate(ValidateRequest{
		STTProvider: "speechmatics", STTModel: "ursa-2",
		LLMProvider: "groq", LLMModel: "llama-3.3-70b",
		TTSProvider: "rime", TTSModel: "arcana",
	})
	require.Equal(t, StatusError, res.Status)
	require.Equal(t, ReasonNoMatchingCombo, res.Reason)
	require.Nil(t, res.Matched)
	require.NotNil(t, res.Alternatives)
	for _, c := range catalog.Categories {
		require.NotEmpty(t, res.Alternatives[string(c)])
	}
}

func TestValidate_ModelCaseInsensitive(t *testing.T) {
	e := New()

	res := e.Validate(ValidateRequest{
		STTProvider: "Deepgram", STTModel: "NOVA-3",
		LLMProvider: "OpenAI", LLMModel: "GPT-4.1-MINI",
		TTSProvider: "Cartesia", TTSModel: "Sonic-3",
	})
	require.Equal(t, StatusOK, res.Status)
	require.Empty(t, res.UnknownModels)
	require.NotNil(t, res.Matched)
}
