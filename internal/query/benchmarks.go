package query

import (
	"fmt"
	"sort"

	"github.com/stackpick/stackpick/internal/catalog"
)

// BenchmarksRequest lists or filters the raw benchmark catalog.
type BenchmarksRequest struct {
	Language string `mapstructure:"language"`
	Provider string `mapstructure:"provider"`
	SortBy   string `mapstructure:"sort_by"`
}

// EntryView is one benchmark row without ranking context.
type EntryView struct {
	Combo      string   `json:"combo"`
	LatencyMs  int      `json:"latency_ms"`
	Quality    float64  `json:"quality"`
	CostPerMin float64  `json:"cost_per_min"`
	MOS        float64  `json:"mos,omitempty"`
	Languages  []string `json:"languages"`
	Note       string   `json:"note,omitempty"`
}

func entryView(e catalog.BenchmarkEntry) EntryView {
	return EntryView{
		Combo:      e.Combo(),
		LatencyMs:  e.LatencyMs,
		Quality:    e.Quality,
		CostPerMin: e.CostPerMin,
		MOS:        e.MOS,
		Languages:  e.Languages,
		Note:       e.Note,
	}
}

// BenchmarksSummary names the standout rows of a (filtered) listing.
type BenchmarksSummary struct {
	Fastest     string `json:"fastest"`
	BestQuality string `json:"best_quality"`
	Cheapest    string `json:"cheapest"`
}

// BenchmarksResult is the catalog listing payload.
type BenchmarksResult struct {
	Result
	Language string             `json:"language,omitempty"`
	Provider string             `json:"provider,omitempty"`
	SortBy   string             `json:"sort_by,omitempty"`
	Entries  []EntryView        `json:"entries,omitempty"`
	Summary  *BenchmarksSummary `json:"summary,omitempty"`
}

// Benchmarks lists catalog rows, optionally filtered by language and/or
// provider, sorted on a single key (latency and cost ascending, quality
// descending).
func (e *Engine) Benchmarks(req BenchmarksRequest) BenchmarksResult {
	entries := e.entries
	result := BenchmarksResult{Result: okResult()}

	if req.Language != "" {
		lang, ok := e.resolver.Language(req.Language)
		if !ok {
			return BenchmarksResult{Result: e.unsupportedLanguage(req.Language)}
		}
		result.Language = lang.Canonical
		entries = filterByLanguage(entries, lang.Canonical)
	}

	if req.Provider != "" {
		m, ok := e.resolver.Provider(req.Provider)
		if !ok {
			return BenchmarksResult{Result: errorResult(ReasonUnsupportedProvider,
				fmt.Sprintf("provider %q is not recognized", req.Provider),
				catalog.ProviderNames())}
		}
		result.Provider = m.Canonical
		entries = filterByProvider(entries, m.Canonical)
	}

	sortBy := req.SortBy
	if sortBy != "quality" && sortBy != "cost" {
		sortBy = "latency"
	}
	result.SortBy = sortBy

	sorted := make([]catalog.BenchmarkEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		switch sortBy {
		case "quality":
			return sorted[a].Quality > sorted[b].Quality
		case "cost":
			return sorted[a].CostPerMin < sorted[b].CostPerMin
		default:
			return sorted[a].LatencyMs < sorted[b].LatencyMs
		}
	})

	for _, entry := range sorted {
		result.Entries = append(result.Entries, entryView(entry))
	}
	result.Summary = summarize(sorted)
	return result
}

// filterByProvider keeps entries where any category's provider matches.
func filterByProvider(entries []catalog.BenchmarkEntry, provider string) []catalog.BenchmarkEntry {
	var out []catalog.BenchmarkEntry
	for _, e := range entries {
		for _, c := range catalog.Categories {
			if e.Provider(c) == provider {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

func summarize(entries []catalog.BenchmarkEntry) *BenchmarksSummary {
	if len(entries) == 0 {
		return nil
	}
	fastest, best, cheapest := entries[0], entries[0], entries[0]
	for _, e := range entries[1:] {
		if e.LatencyMs < fastest.LatencyMs {
			fastest = e
		}
		if e.Quality > best.Quality {
			best = e
		}
		if e.CostPerMin < cheapest.CostPerMin {
			cheapest = e
		}
	}
	return &BenchmarksSummary{
		Fastest:     fastest.Combo(),
		BestQuality: best.Combo(),
		Cheapest:    cheapest.Combo(),
	}
}
