package scaffold

import (
	"fmt"
	"strings"
)

// nextjsFiles renders the Next.js web-app starter: a package manifest, a
// server route that brokers provider credentials, env template, and README.
func nextjsFiles(in Inputs) []File {
	e := in.Entry
	return []File{
		{Path: "package.json", Content: nextjsPackageJSON(in)},
		{Path: "app/api/voice/route.ts", Content: nextjsRoute(in)},
		{Path: ".env.example", Content: envExample(e.STTProvider, e.LLMProvider, e.TTSProvider)},
		{Path: "README.md", Content: nextjsReadme(in)},
	}
}

func nextjsPackageJSON(in Inputs) string {
	return fmt.Sprintf(`{
  "name": "%s",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start"
  },
  "dependencies": {
    "next": "^15.0.0",
    "react": "^19.0.0",
    "react-dom": "^19.0.0"
  }
}
`, in.ProjectName)
}

func nextjsRoute(in Inputs) string {
	e := in.Entry
	return fmt.Sprintf(`// Voice pipeline configuration endpoint.
//
// Stack: %s
// The browser asks this route for short-lived credentials; provider API keys
// never leave the server.

import { NextResponse } from "next/server";

export async function POST() {
  return NextResponse.json({
    stt: { provider: "%s", model: "%s", key: process.env.%s },
    llm: { provider: "%s", model: "%s", key: process.env.%s },
    tts: { provider: "%s", model: "%s", key: process.env.%s },
    language: "%s",
  });
}
`,
		e.Combo(),
		e.STTProvider, e.STTModel, envVarName(e.STTProvider),
		e.LLMProvider, e.LLMModel, envVarName(e.LLMProvider),
		e.TTSProvider, e.TTSModel, envVarName(e.TTSProvider),
		languageCode(in.Language),
	)
}

func nextjsReadme(in Inputs) string {
	e := in.Entry
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", in.ProjectName)
	fmt.Fprintf(&b, "A Next.js voice app for %s (%s), generated by stackpick.\n\n", in.UseCase, in.Language)
	b.WriteString("## Stack\n\n")
	fmt.Fprintf(&b, "- STT: %s %s\n", e.STTProvider, e.STTModel)
	fmt.Fprintf(&b, "- LLM: %s %s\n", e.LLMProvider, e.LLMModel)
	fmt.Fprintf(&b, "- TTS: %s %s\n\n", e.TTSProvider, e.TTSModel)
	b.WriteString("## Setup\n\n")
	b.WriteString("1. Copy [.env.example](.env.example) to `.env.local` and fill in your API keys.\n")
	b.WriteString("2. `npm install && npm run dev`\n")
	b.WriteString("3. The pipeline config is served from [app/api/voice/route.ts](app/api/voice/route.ts).\n")
	return b.String()
}
