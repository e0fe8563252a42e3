package query

import (
	"fmt"
	"log/slog"

	"github.com/stackpick/stackpick/internal/catalog"
	"github.com/stackpick/stackpick/internal/ranking"
	"github.com/stackpick/stackpick/internal/resolve"
)

// Clamp bounds for max_results.
const (
	MinResults     = 1
	MaxResults     = 10
	DefaultResults = 5
)

// RecommendRequest asks for a ranked list of stacks for a language and use
// case.
type RecommendRequest struct {
	Language    string `mapstructure:"language"`
	UseCase     string `mapstructure:"use_case"`
	OptimizeFor string `mapstructure:"optimize_for"`
	MaxResults  int    `mapstructure:"max_results"`
}

// RecommendResult is the ranked recommendation payload.
type RecommendResult struct {
	Result
	Language    string                `json:"language,omitempty"`
	UseCase     string                `json:"use_case,omitempty"`
	OptimizeFor ranking.Objective     `json:"optimize_for,omitempty"`
	Weights     *catalog.ScoreWeights `json:"weights,omitempty"`
	TopPick     *StackView            `json:"top_pick,omitempty"`
	Stacks      []StackView           `json:"stacks,omitempty"`
}

// Recommend resolves the request's language and use case, ranks the
// language's stacks under the requested objective, and returns the top
// max_results of them with the winner highlighted.
func (e *Engine) Recommend(req RecommendRequest) RecommendResult {
	lang, ok := e.resolver.Language(req.Language)
	if !ok {
		return RecommendResult{Result: e.unsupportedLanguage(req.Language)}
	}

	// An unrecognized use case passes through verbatim and ranks with
	// default weights; it is not an error.
	useCase := req.UseCase
	if key, ok := e.resolver.UseCase(req.UseCase); ok {
		useCase = key
	}

	objective, ok := ranking.ParseObjective(req.OptimizeFor)
	if !ok {
		objective = ranking.ObjectiveBalanced
	}
	weights := ranking.WeightsFor(objective, useCase)

	candidates := filterByLanguage(e.entries, lang.Canonical)
	if len(candidates) == 0 {
		return RecommendResult{Result: errorResult(ReasonNoMatchingCombo,
			fmt.Sprintf("no benchmarked stacks support %s", lang.Canonical), nil)}
	}

	ranked := ranking.Rank(candidates, weights)
	slog.Debug("recommend ranked", "language", lang.Canonical, "use_case", useCase,
		"objective", objective, "candidates", len(ranked))

	max := clampResults(req.MaxResults)
	if len(ranked) > max {
		ranked = ranked[:max]
	}

	views := stackViews(ranked)
	top := views[0]
	return RecommendResult{
		Result:      okResult(),
		Language:    lang.Canonical,
		UseCase:     useCase,
		OptimizeFor: objective,
		Weights:     &weights,
		TopPick:     &top,
		Stacks:      views,
	}
}

func (e *Engine) unsupportedLanguage(input string) Result {
	return errorResult(ReasonUnsupportedLanguage,
		fmt.Sprintf("language %q is not supported", input),
		resolve.NearestLanguages(input, 5))
}

func clampResults(n int) int {
	switch {
	case n == 0:
		return DefaultResults
	case n < MinResults:
		return MinResults
	case n > MaxResults:
		return MaxResults
	default:
		return n
	}
}
