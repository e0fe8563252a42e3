package scaffold

import (
	"fmt"
	"strings"
)

// pipecatFiles renders the Pipecat voice-agent starter: a bot entrypoint
// wired to the recommended stack, dependencies, env template, and README.
func pipecatFiles(in Inputs) []File {
	e := in.Entry
	return []File{
		{Path: "bot.py", Content: pipecatBot(in)},
		{Path: "requirements.txt", Content: pipecatRequirements()},
		{Path: ".env.example", Content: envExample(e.STTProvider, e.LLMProvider, e.TTSProvider)},
		{Path: "README.md", Content: pipecatReadme(in)},
	}
}

func pipecatBot(in Inputs) string {
	e := in.Entry
	return fmt.Sprintf(`"""%s — Pipecat voice agent.

Stack: %s
Latency %dms · quality %.1f/5 · $%.4f/min
"""

import asyncio
import os

from pipecat.pipeline.pipeline import Pipeline
from pipecat.pipeline.runner import PipelineRunner
from pipecat.pipeline.task import PipelineTask
from pipecat.transports.services.daily import DailyParams, DailyTransport


async def main():
    transport = DailyTransport(
        os.environ["DAILY_ROOM_URL"],
        None,
        "%s",
        DailyParams(audio_in_enabled=True, audio_out_enabled=True),
    )

    stt = make_stt()    # %s %s
    llm = make_llm()    # %s %s
    tts = make_tts()    # %s %s

    pipeline = Pipeline([
        transport.input(),
        stt,
        llm,
        tts,
        transport.output(),
    ])

    runner = PipelineRunner()
    await runner.run(PipelineTask(pipeline))


def make_stt():
    from pipecat.services.%s.stt import %sSTTService
    return %sSTTService(api_key=os.environ["%s"], model="%s", language="%s")


def make_llm():
    from pipecat.services.%s.llm import %sLLMService
    return %sLLMService(api_key=os.environ["%s"], model="%s")


def make_tts():
    from pipecat.services.%s.tts import %sTTSService
    return %sTTSService(api_key=os.environ["%s"], model="%s")


if __name__ == "__main__":
    asyncio.run(main())
`,
		in.ProjectName, e.Combo(), e.LatencyMs, e.Quality, e.CostPerMin,
		in.ProjectName,
		e.STTProvider, e.STTModel, e.LLMProvider, e.LLMModel, e.TTSProvider, e.TTSModel,
		pyModule(e.STTProvider), pyClass(e.STTProvider), pyClass(e.STTProvider), envVarName(e.STTProvider), e.STTModel, languageCode(in.Language),
		pyModule(e.LLMProvider), pyClass(e.LLMProvider), pyClass(e.LLMProvider), envVarName(e.LLMProvider), e.LLMModel,
		pyModule(e.TTSProvider), pyClass(e.TTSProvider), pyClass(e.TTSProvider), envVarName(e.TTSProvider), e.TTSModel,
	)
}

func pipecatRequirements() string {
	return `pipecat-ai[daily]
python-dotenv
`
}

func pipecatReadme(in Inputs) string {
	e := in.Entry
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", in.ProjectName)
	fmt.Fprintf(&b, "A Pipecat voice agent for %s (%s), generated by stackpick.\n\n", in.UseCase, in.Language)
	b.WriteString("## Stack\n\n")
	fmt.Fprintf(&b, "| Stage | Provider | Model |\n|-------|----------|-------|\n")
	fmt.Fprintf(&b, "| STT | %s | %s |\n", e.STTProvider, e.STTModel)
	fmt.Fprintf(&b, "| LLM | %s | %s |\n", e.LLMProvider, e.LLMModel)
	fmt.Fprintf(&b, "| TTS | %s | %s |\n\n", e.TTSProvider, e.TTSModel)
	b.WriteString("## Setup\n\n")
	b.WriteString("1. Copy [.env.example](.env.example) to `.env` and fill in your API keys.\n")
	b.WriteString("2. Install dependencies from [requirements.txt](requirements.txt): `pip install -r requirements.txt`\n")
	b.WriteString("3. Run the agent in [bot.py](bot.py): `python bot.py`\n")
	return b.String()
}

// pyModule maps a provider to its pipecat service module name.
func pyModule(provider string) string {
	return strings.ToLower(provider)
}

// pyClass maps a provider to the class-name prefix pipecat uses for it.
func pyClass(provider string) string {
	switch provider {
	case "AssemblyAI", "OpenAI", "ElevenLabs":
		return provider
	default:
		return strings.ToUpper(provider[:1]) + strings.ToLower(provider[1:])
	}
}

// languageCode maps a canonical language to a BCP-47 primary subtag.
func languageCode(language string) string {
	codes := map[string]string{
		"English":    "en",
		"Spanish":    "es",
		"French":     "fr",
		"German":     "de",
		"Portuguese": "pt",
		"Hindi":      "hi",
		"Japanese":   "ja",
		"Korean":     "ko",
		"Mandarin":   "zh",
		"Thai":       "th",
	}
	if c, ok := codes[language]; ok {
		return c
	}
	return "en"
}

// envExample renders the shared .env template for three providers.
func envExample(providers ...string) string {
	var b strings.Builder
	b.WriteString("# API credentials for the generated stack\n")
	seen := map[string]bool{}
	for _, p := range providers {
		v := envVarName(p)
		if seen[v] {
			continue
		}
		seen[v] = true
		fmt.Fprintf(&b, "%s=\n", v)
	}
	b.WriteString("\n# Transport\nDAILY_ROOM_URL=\n")
	return b.String()
}
