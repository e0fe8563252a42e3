// Package ranking converts objective preferences into a deterministic
// weighted ordering over benchmark entries.
package ranking

import (
	"math"
	"sort"

	"github.com/stackpick/stackpick/internal/catalog"
)

// Objective selects which dimension a ranking favors.
type Objective string

const (
	ObjectiveBalanced Objective = "balanced"
	ObjectiveLatency  Objective = "latency"
	ObjectiveQuality  Objective = "quality"
	ObjectiveCost     Objective = "cost"
)

// ParseObjective validates an optimize_for value, defaulting empty input to
// balanced.
func ParseObjective(s string) (Objective, bool) {
	switch Objective(s) {
	case "":
		return ObjectiveBalanced, true
	case ObjectiveBalanced, ObjectiveLatency, ObjectiveQuality, ObjectiveCost:
		return Objective(s), true
	default:
		return "", false
	}
}

// WeightsFor maps an objective to its weight triple. Balanced uses the use
// case's configured priorities, falling back to the catalog default when the
// use case is unrecognized.
func WeightsFor(objective Objective, useCaseKey string) catalog.ScoreWeights {
	switch objective {
	case ObjectiveLatency:
		return catalog.ScoreWeights{Latency: 100, Quality: 30, Cost: 30}
	case ObjectiveQuality:
		return catalog.ScoreWeights{Latency: 30, Quality: 100, Cost: 30}
	case ObjectiveCost:
		return catalog.ScoreWeights{Latency: 30, Quality: 30, Cost: 100}
	default:
		return catalog.UseCaseWeights(useCaseKey)
	}
}

// LatencyScore maps measured latency to 0-100; lower latency scores higher,
// with everything at or under 100ms treated as perfect.
func LatencyScore(latencyMs int) float64 {
	return math.Max(0, 100-float64(latencyMs-100)*0.5)
}

// QualityScore maps the 0-5 quality scale linearly to 0-100.
func QualityScore(quality float64) float64 {
	return quality / 5 * 100
}

// CostScore maps cost per minute to 0-100; anything at or above $0.02/min
// bottoms out at zero.
func CostScore(costPerMin float64) float64 {
	return math.Max(0, 100-costPerMin*5000)
}

// Score computes the weighted average of the three sub-scores, rounded to
// one decimal place.
func Score(e catalog.BenchmarkEntry, w catalog.ScoreWeights) float64 {
	weighted := LatencyScore(e.LatencyMs)*w.Latency +
		QualityScore(e.Quality)*w.Quality +
		CostScore(e.CostPerMin)*w.Cost
	return round1(weighted / w.Sum())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Ranked pairs an entry with its score and 1-based position.
type Ranked struct {
	Entry catalog.BenchmarkEntry `json:"entry"`
	Score float64                `json:"score"`
	Rank  int                    `json:"rank"`
}

// Rank scores every entry under w and sorts into a strict total order:
// score descending, then latency ascending, quality descending, cost
// ascending. The tie-break chain makes repeated rankings of the same input
// reproducible.
func Rank(entries []catalog.BenchmarkEntry, w catalog.ScoreWeights) []Ranked {
	ranked := make([]Ranked, len(entries))
	for i, e := range entries {
		ranked[i] = Ranked{Entry: e, Score: Score(e, w)}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return less(ranked[a], ranked[b])
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Best returns the highest-ranked entry under w, with ok=false for an empty
// input set.
func Best(entries []catalog.BenchmarkEntry, w catalog.ScoreWeights) (Ranked, bool) {
	ranked := Rank(entries, w)
	if len(ranked) == 0 {
		return Ranked{}, false
	}
	return ranked[0], true
}

func less(a, b Ranked) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Entry.LatencyMs != b.Entry.LatencyMs {
		return a.Entry.LatencyMs < b.Entry.LatencyMs
	}
	if a.Entry.Quality != b.Entry.Quality {
		return a.Entry.Quality > b.Entry.Quality
	}
	return a.Entry.CostPerMin < b.Entry.CostPerMin
}
