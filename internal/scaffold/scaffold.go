// Package scaffold generates starter project files for a chosen framework
// and stack. Generation is pure: it returns (path, content) pairs and never
// touches the filesystem — persisting the files is the caller's job.
package scaffold

import (
	"fmt"
	"strings"

	"github.com/stackpick/stackpick/internal/catalog"
	"github.com/stackpick/stackpick/internal/resolve"
)

// File is a single generated artifact.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Inputs carries everything a framework template needs.
type Inputs struct {
	ProjectName string
	Language    string
	UseCase     string
	Entry       catalog.BenchmarkEntry
}

// Generate produces the starter files for the named framework. Unknown
// framework names are an error; template panics are recovered and reported
// as errors so a bad template can never take the process down.
func Generate(framework string, in Inputs) (files []File, err error) {
	defer func() {
		if r := recover(); r != nil {
			files = nil
			err = fmt.Errorf("rendering %s templates: %v", framework, r)
		}
	}()

	if in.ProjectName == "" {
		in.ProjectName = defaultProjectName(in)
	}

	switch framework {
	case "pipecat":
		return pipecatFiles(in), nil
	case "nextjs":
		return nextjsFiles(in), nil
	default:
		return nil, fmt.Errorf("no templates for framework %q", framework)
	}
}

func defaultProjectName(in Inputs) string {
	name := resolve.Slug(in.Language + " " + in.UseCase + " agent")
	if name == "" {
		name = "voice-agent"
	}
	return name
}

// envVarName returns the conventional API-key variable for a provider.
func envVarName(provider string) string {
	return strings.ToUpper(strings.ReplaceAll(resolve.Slug(provider), "-", "_")) + "_API_KEY"
}
