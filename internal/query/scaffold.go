package query

import (
	"fmt"
	"log/slog"

	"github.com/stackpick/stackpick/internal/catalog"
	"github.com/stackpick/stackpick/internal/ranking"
	"github.com/stackpick/stackpick/internal/scaffold"
)

// ScaffoldRequest asks for starter files for the best framework-compatible
// stack.
type ScaffoldRequest struct {
	Language    string `mapstructure:"language"`
	UseCase     string `mapstructure:"use_case"`
	OptimizeFor string `mapstructure:"optimize_for"`
	Framework   string `mapstructure:"framework"`
	ProjectName string `mapstructure:"project_name"`
}

// ScaffoldResult carries the chosen stack and the generated files. The
// engine performs no I/O; persisting Files is the caller's decision.
type ScaffoldResult struct {
	Result
	Framework    string          `json:"framework,omitempty"`
	Stack        *StackView      `json:"stack,omitempty"`
	PassedOver   *StackView      `json:"passed_over,omitempty"`
	Files        []scaffold.File `json:"files,omitempty"`
	LinkWarnings []string        `json:"link_warnings,omitempty"`
}

// Scaffold ranks the language's stacks, drops rows the framework cannot
// host, and renders starter files for the winner. When the globally
// top-ranked stack is incompatible, the best compatible stack is used
// instead; the switch is only surfaced as a fallback when the score gap
// exceeds the engine's materiality threshold.
func (e *Engine) Scaffold(req ScaffoldRequest) ScaffoldResult {
	lang, ok := e.resolver.Language(req.Language)
	if !ok {
		return ScaffoldResult{Result: e.unsupportedLanguage(req.Language)}
	}

	useCase := req.UseCase
	if key, ok := e.resolver.UseCase(req.UseCase); ok {
		useCase = key
	}
	objective, ok := ranking.ParseObjective(req.OptimizeFor)
	if !ok {
		objective = ranking.ObjectiveBalanced
	}
	weights := ranking.WeightsFor(objective, useCase)

	fw, ok := catalog.FrameworkByName(req.Framework)
	if !ok {
		return ScaffoldResult{Result: errorResult(ReasonTemplateGenerationFailed,
			fmt.Sprintf("no templates for framework %q", req.Framework), frameworkNames())}
	}

	candidates := filterByLanguage(e.entries, lang.Canonical)
	ranked := ranking.Rank(candidates, weights)
	if len(ranked) == 0 {
		return ScaffoldResult{Result: errorResult(ReasonNoMatchingCombo,
			fmt.Sprintf("no benchmarked stacks support %s", lang.Canonical), nil)}
	}

	top := ranked[0]
	chosen, ok := bestCompatible(ranked, fw)
	if !ok {
		return ScaffoldResult{
			Result: errorResult(ReasonNoScaffoldCompatible,
				fmt.Sprintf("no %s-supported stack is benchmarked for %s", fw.Display, lang.Canonical), nil),
			Framework: fw.Name,
		}
	}

	result := ScaffoldResult{Result: okResult(), Framework: fw.Name}
	chosenView := stackView(chosen)
	result.Stack = &chosenView

	if chosen.Rank != top.Rank {
		delta := top.Score - chosen.Score
		slog.Debug("scaffold fallback", "framework", fw.Name, "delta", delta,
			"top", top.Entry.Combo(), "chosen", chosen.Entry.Combo())
		if delta > e.fallbackThreshold {
			topView := stackView(top)
			result.Status = StatusFallback
			result.PassedOver = &topView
			result.Message = fmt.Sprintf(
				"%s does not support %q; using %q instead (scores %.1f vs %.1f)",
				fw.Display, top.Entry.Combo(), chosen.Entry.Combo(), top.Score, chosen.Score)
		}
	}

	files, err := scaffold.Generate(fw.Name, scaffold.Inputs{
		ProjectName: req.ProjectName,
		Language:    lang.Canonical,
		UseCase:     useCase,
		Entry:       chosen.Entry,
	})
	if err != nil {
		return ScaffoldResult{
			Result: errorResult(ReasonTemplateGenerationFailed,
				fmt.Sprintf("template generation failed: %v", err), nil),
			Framework: fw.Name,
			Stack:     &chosenView,
		}
	}

	result.Files = files
	result.LinkWarnings = scaffold.CheckLinks(files)
	return result
}

func bestCompatible(ranked []ranking.Ranked, fw catalog.Framework) (ranking.Ranked, bool) {
	for _, r := range ranked {
		if fw.Compatible(r.Entry) {
			return r, true
		}
	}
	return ranking.Ranked{}, false
}

func frameworkNames() []string {
	names := make([]string, 0, len(catalog.Frameworks))
	for _, f := range catalog.Frameworks {
		names = append(names, f.Name)
	}
	return names
}
