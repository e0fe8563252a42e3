package query

import (
	"fmt"
	"sort"

	"github.com/stackpick/stackpick/internal/catalog"
	"github.com/stackpick/stackpick/internal/combo"
	"github.com/stackpick/stackpick/internal/ranking"
)

// comboExample is shown whenever a combo string fails to parse.
const comboExample = "Deepgram nova-3 + OpenAI gpt-4.1-mini + Cartesia sonic-3"

// CompareRequest puts two combo strings head to head.
type CompareRequest struct {
	ComboA string `mapstructure:"combo_a"`
	ComboB string `mapstructure:"combo_b"`
}

// MetricComparison is one line of the head-to-head: the measured value per
// side and the winner ("a" or "b"; ties go to "a").
type MetricComparison struct {
	Metric string  `json:"metric"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Winner string  `json:"winner"`
}

// LanguageCoverage is the language set difference between the two sides.
type LanguageCoverage struct {
	Shared []string `json:"shared,omitempty"`
	AOnly  []string `json:"a_only,omitempty"`
	BOnly  []string `json:"b_only,omitempty"`
}

// MatchCounts records how many catalog rows each side matched.
type MatchCounts struct {
	A int `json:"a"`
	B int `json:"b"`
}

// AmbiguityFlags records sides where provider-only input matched more than
// one row and the best-scoring row was chosen.
type AmbiguityFlags struct {
	A bool `json:"a"`
	B bool `json:"b"`
}

// CompareResult is the head-to-head payload.
type CompareResult struct {
	Result
	ComboA       string             `json:"combo_a,omitempty"`
	ComboB       string             `json:"combo_b,omitempty"`
	MatchesFound *MatchCounts       `json:"matches_found,omitempty"`
	Ambiguous    *AmbiguityFlags    `json:"ambiguous,omitempty"`
	StackA       *StackView         `json:"stack_a,omitempty"`
	StackB       *StackView         `json:"stack_b,omitempty"`
	Metrics      []MetricComparison `json:"metrics,omitempty"`
	Languages    *LanguageCoverage  `json:"languages,omitempty"`
}

// Compare parses both combos, matches them against the catalog (choosing the
// best-scoring row under default weights when a side is ambiguous), and
// reports a per-metric head-to-head plus language coverage.
func (e *Engine) Compare(req CompareRequest) CompareResult {
	parsedA, err := combo.Parse(e.resolver, req.ComboA)
	if err != nil {
		return CompareResult{Result: unparseable("combo_a", err)}
	}
	parsedB, err := combo.Parse(e.resolver, req.ComboB)
	if err != nil {
		return CompareResult{Result: unparseable("combo_b", err)}
	}

	matchesA := combo.MatchEntries(parsedA, e.entries)
	matchesB := combo.MatchEntries(parsedB, e.entries)
	counts := &MatchCounts{A: len(matchesA), B: len(matchesB)}

	if len(matchesA) == 0 || len(matchesB) == 0 {
		return CompareResult{
			Result: errorResult(ReasonNoMatchingCombo,
				noMatchMessage(parsedA, parsedB, counts), nil),
			ComboA:       parsedA.Describe(),
			ComboB:       parsedB.Describe(),
			MatchesFound: counts,
		}
	}

	// Ambiguous sides keep the best-scoring row under default weights; the
	// flags record that a choice was made for the caller.
	weights := catalog.DefaultUseCaseWeights
	bestA, _ := ranking.Best(matchesA, weights)
	bestB, _ := ranking.Best(matchesB, weights)
	viewA, viewB := stackView(bestA), stackView(bestB)
	viewA.Rank, viewB.Rank = 0, 0

	return CompareResult{
		Result:       okResult(),
		ComboA:       parsedA.Describe(),
		ComboB:       parsedB.Describe(),
		MatchesFound: counts,
		Ambiguous:    &AmbiguityFlags{A: len(matchesA) > 1, B: len(matchesB) > 1},
		StackA:       &viewA,
		StackB:       &viewB,
		Metrics:      headToHead(bestA.Entry, bestB.Entry),
		Languages:    coverage(bestA.Entry, bestB.Entry),
	}
}

func unparseable(field string, err error) Result {
	return errorResult(ReasonUnparseableCombo,
		fmt.Sprintf("%s: %v (expected e.g. %q)", field, err, comboExample), nil)
}

func noMatchMessage(a, b combo.Parsed, counts *MatchCounts) string {
	if counts.A == 0 && counts.B == 0 {
		return fmt.Sprintf("no benchmarked rows match %q or %q", a.Describe(), b.Describe())
	}
	if counts.A == 0 {
		return fmt.Sprintf("no benchmarked rows match %q", a.Describe())
	}
	return fmt.Sprintf("no benchmarked rows match %q", b.Describe())
}

// headToHead compares latency, quality, and cost. Lower wins latency and
// cost; higher wins quality; ties break toward the first operand.
func headToHead(a, b catalog.BenchmarkEntry) []MetricComparison {
	winner := func(aBetter bool, tie bool) string {
		if tie || aBetter {
			return "a"
		}
		return "b"
	}
	return []MetricComparison{
		{
			Metric: "latency_ms",
			A:      float64(a.LatencyMs), B: float64(b.LatencyMs),
			Winner: winner(a.LatencyMs < b.LatencyMs, a.LatencyMs == b.LatencyMs),
		},
		{
			Metric: "quality",
			A:      a.Quality, B: b.Quality,
			Winner: winner(a.Quality > b.Quality, a.Quality == b.Quality),
		},
		{
			Metric: "cost_per_min",
			A:      a.CostPerMin, B: b.CostPerMin,
			Winner: winner(a.CostPerMin < b.CostPerMin, a.CostPerMin == b.CostPerMin),
		},
	}
}

func coverage(a, b catalog.BenchmarkEntry) *LanguageCoverage {
	inB := make(map[string]bool, len(b.Languages))
	for _, l := range b.Languages {
		inB[l] = true
	}
	cov := &LanguageCoverage{}
	for _, l := range a.Languages {
		if inB[l] {
			cov.Shared = append(cov.Shared, l)
		} else {
			cov.AOnly = append(cov.AOnly, l)
		}
	}
	inA := make(map[string]bool, len(a.Languages))
	for _, l := range a.Languages {
		inA[l] = true
	}
	for _, l := range b.Languages {
		if !inA[l] {
			cov.BOnly = append(cov.BOnly, l)
		}
	}
	sort.Strings(cov.Shared)
	sort.Strings(cov.AOnly)
	sort.Strings(cov.BOnly)
	return cov
}
