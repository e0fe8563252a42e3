package catalog

// Entries is the benchmark catalog: one row per measured stack, in
// publication order. Rows reference only providers present in Providers for
// their category; catalog_test enforces this.
var Entries = []BenchmarkEntry{
	{
		STTProvider: "Deepgram", STTModel: "nova-3",
		LLMProvider: "OpenAI", LLMModel: "gpt-4.1-mini",
		TTSProvider: "Cartesia", TTSModel: "sonic-3",
		LatencyMs: 210, Quality: 4.6, CostPerMin: 0.0095, MOS: 4.4,
		Languages: []string{"English", "Spanish", "French", "German", "Portuguese", "Hindi", "Japanese", "Korean", "Mandarin", "Thai"},
		Note:      "Strong all-round default for production agents",
	},
	{
		STTProvider: "Deepgram", STTModel: "nova-2",
		LLMProvider: "OpenAI", LLMModel: "gpt-4o-mini",
		TTSProvider: "Cartesia", TTSModel: "sonic-2",
		LatencyMs: 230, Quality: 4.3, CostPerMin: 0.0078, MOS: 4.2,
		Languages: []string{"English", "Spanish", "French", "German", "Portuguese"},
		Note:      "Previous-generation variant of the default stack",
	},
	{
		STTProvider: "Deepgram", STTModel: "nova-3",
		LLMProvider: "Groq", LLMModel: "llama-3.3-70b",
		TTSProvider: "Cartesia", TTSModel: "sonic-turbo",
		LatencyMs: 160, Quality: 4.1, CostPerMin: 0.0069, MOS: 4.1,
		Languages: []string{"English", "Spanish", "French", "German"},
		Note:      "Lowest measured voice-to-voice latency",
	},
	{
		STTProvider: "AssemblyAI", STTModel: "universal-streaming",
		LLMProvider: "Anthropic", LLMModel: "claude-haiku-4-5",
		TTSProvider: "ElevenLabs", TTSModel: "eleven-flash-v2-5",
		LatencyMs: 250, Quality: 4.4, CostPerMin: 0.0128, MOS: 4.3,
		Languages: []string{"English", "Spanish", "French", "Portuguese", "Hindi"},
	},
	{
		STTProvider: "AssemblyAI", STTModel: "universal-streaming",
		LLMProvider: "OpenAI", LLMModel: "gpt-4.1-mini",
		TTSProvider: "ElevenLabs", TTSModel: "eleven-turbo-v2-5",
		LatencyMs: 260, Quality: 4.5, CostPerMin: 0.0142, MOS: 4.5,
		Languages: []string{"English", "Spanish", "French", "German", "Japanese"},
	},
	{
		STTProvider: "Speechmatics", STTModel: "ursa-2",
		LLMProvider: "Anthropic", LLMModel: "claude-sonnet-4-5",
		TTSProvider: "ElevenLabs", TTSModel: "eleven-turbo-v2-5",
		LatencyMs: 290, Quality: 4.8, CostPerMin: 0.0188, MOS: 4.6,
		Languages: []string{"English", "Spanish", "French", "German", "Portuguese", "Japanese", "Korean", "Mandarin", "Thai"},
		Note:      "Highest quality score in the catalog",
	},
	{
		STTProvider: "Gladia", STTModel: "solaria-1",
		LLMProvider: "OpenAI", LLMModel: "gpt-4.1-mini",
		TTSProvider: "Cartesia", TTSModel: "sonic-3",
		LatencyMs: 225, Quality: 4.4, CostPerMin: 0.0102, MOS: 4.4,
		Languages: []string{"English", "French", "German", "Hindi", "Thai"},
	},
	{
		STTProvider: "Deepgram", STTModel: "nova-3",
		LLMProvider: "Anthropic", LLMModel: "claude-haiku-4-5",
		TTSProvider: "Rime", TTSModel: "mistv2",
		LatencyMs: 190, Quality: 4.2, CostPerMin: 0.0081, MOS: 4.0,
		Languages: []string{"English", "Spanish"},
		Note:      "Tuned for high-volume phone deployments",
	},
	{
		STTProvider: "Deepgram", STTModel: "nova-2",
		LLMProvider: "Google", LLMModel: "gemini-2.5-flash-lite",
		TTSProvider: "Rime", TTSModel: "mistv2",
		LatencyMs: 215, Quality: 3.9, CostPerMin: 0.0052, MOS: 3.9,
		Languages: []string{"English", "Spanish", "Portuguese"},
		Note:      "Cheapest stack in the catalog",
	},
	{
		STTProvider: "Speechmatics", STTModel: "ursa-2",
		LLMProvider: "Google", LLMModel: "gemini-2.5-flash",
		TTSProvider: "ElevenLabs", TTSModel: "eleven-turbo-v2-5",
		LatencyMs: 280, Quality: 4.6, CostPerMin: 0.0165, MOS: 4.5,
		Languages: []string{"English", "German", "Japanese", "Korean", "Mandarin", "Thai"},
	},
	{
		STTProvider: "Gladia", STTModel: "solaria-1",
		LLMProvider: "Groq", LLMModel: "llama-3.3-70b",
		TTSProvider: "Cartesia", TTSModel: "sonic-turbo",
		LatencyMs: 175, Quality: 4.0, CostPerMin: 0.0074, MOS: 4.1,
		Languages: []string{"English", "Spanish", "French"},
	},
	{
		STTProvider: "AssemblyAI", STTModel: "universal",
		LLMProvider: "Google", LLMModel: "gemini-2.5-flash",
		TTSProvider: "Cartesia", TTSModel: "sonic-3",
		LatencyMs: 240, Quality: 4.3, CostPerMin: 0.0110, MOS: 4.3,
		Languages: []string{"English", "Spanish", "Hindi", "Japanese", "Thai"},
	},
}
