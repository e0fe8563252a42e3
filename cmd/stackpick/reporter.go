package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/stackpick/stackpick/internal/query"
)

// renderJSON writes any result payload as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// writeStatus prints the envelope line(s) shared by every operation.
func writeStatus(w io.Writer, r query.Result) {
	if r.Status == query.StatusOK {
		return
	}
	fmt.Fprintf(w, "Status: %s", r.Status) //nolint:errcheck
	if r.Reason != "" {
		fmt.Fprintf(w, " (%s)", r.Reason) //nolint:errcheck
	}
	fmt.Fprintln(w) //nolint:errcheck
	if r.Message != "" {
		fmt.Fprintln(w, r.Message) //nolint:errcheck
	}
	if len(r.Suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean: %s\n", strings.Join(r.Suggestions, ", ")) //nolint:errcheck
	}
}

// writeStackTable prints ranked stacks as a fixed-width table.
func writeStackTable(w io.Writer, stacks []query.StackView) {
	comboWidth := len("Stack")
	for _, s := range stacks {
		if l := runewidth.StringWidth(s.Combo); l > comboWidth {
			comboWidth = l
		}
	}

	fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("#", 3), padRight("Stack", comboWidth),
		padRight("Score", 6), padRight("Latency", 8),
		padRight("Quality", 8), "Cost/min")
	for _, s := range stacks {
		fmt.Fprintf(w, "%s  %s  %s  %s  %s  $%.4f\n", //nolint:errcheck
			padRight(fmt.Sprintf("%d", s.Rank), 3),
			padRight(s.Combo, comboWidth),
			padRight(fmt.Sprintf("%.1f", s.Score), 6),
			padRight(fmt.Sprintf("%dms", s.LatencyMs), 8),
			padRight(fmt.Sprintf("%.1f/5", s.Quality), 8),
			s.CostPerMin)
	}
}

func renderRecommend(w io.Writer, res query.RecommendResult) {
	writeStatus(w, res.Result)
	if res.Status == query.StatusError {
		return
	}

	fmt.Fprintf(w, "Recommendations for %s · %s · optimize for %s\n\n", //nolint:errcheck
		res.Language, res.UseCase, res.OptimizeFor)
	writeStackTable(w, res.Stacks)
	if res.TopPick != nil {
		fmt.Fprintf(w, "\nTop pick: %s (score %.1f)\n", res.TopPick.Combo, res.TopPick.Score) //nolint:errcheck
		if res.TopPick.Note != "" {
			fmt.Fprintf(w, "  %s\n", res.TopPick.Note) //nolint:errcheck
		}
	}
}

func renderBenchmarks(w io.Writer, res query.BenchmarksResult) {
	writeStatus(w, res.Result)
	if res.Status == query.StatusError {
		return
	}

	var scope []string
	if res.Language != "" {
		scope = append(scope, "language "+res.Language)
	}
	if res.Provider != "" {
		scope = append(scope, "provider "+res.Provider)
	}
	if len(scope) > 0 {
		fmt.Fprintf(w, "Benchmarks (%s), sorted by %s\n\n", strings.Join(scope, ", "), res.SortBy) //nolint:errcheck
	} else {
		fmt.Fprintf(w, "Benchmarks, sorted by %s\n\n", res.SortBy) //nolint:errcheck
	}

	comboWidth := len("Stack")
	for _, e := range res.Entries {
		if l := runewidth.StringWidth(e.Combo); l > comboWidth {
			comboWidth = l
		}
	}
	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("Stack", comboWidth), padRight("Latency", 8),
		padRight("Quality", 8), padRight("Cost/min", 9), "Languages")
	for _, e := range res.Entries {
		fmt.Fprintf(w, "%s  %s  %s  %s  %d\n", //nolint:errcheck
			padRight(e.Combo, comboWidth),
			padRight(fmt.Sprintf("%dms", e.LatencyMs), 8),
			padRight(fmt.Sprintf("%.1f/5", e.Quality), 8),
			padRight(fmt.Sprintf("$%.4f", e.CostPerMin), 9),
			len(e.Languages))
	}

	if res.Summary != nil {
		fmt.Fprintf(w, "\nFastest:      %s\n", res.Summary.Fastest)     //nolint:errcheck
		fmt.Fprintf(w, "Best quality: %s\n", res.Summary.BestQuality)   //nolint:errcheck
		fmt.Fprintf(w, "Cheapest:     %s\n", res.Summary.Cheapest)      //nolint:errcheck
	}
}

func renderCompare(w io.Writer, res query.CompareResult) {
	writeStatus(w, res.Result)
	if res.MatchesFound != nil && res.Status == query.StatusError {
		fmt.Fprintf(w, "Matches found: a=%d b=%d\n", res.MatchesFound.A, res.MatchesFound.B) //nolint:errcheck
	}
	if res.Status == query.StatusError {
		return
	}

	fmt.Fprintf(w, "A: %s\n", res.StackA.Combo) //nolint:errcheck
	fmt.Fprintf(w, "B: %s\n", res.StackB.Combo) //nolint:errcheck
	if res.Ambiguous != nil && (res.Ambiguous.A || res.Ambiguous.B) {
		fmt.Fprintf(w, "Note: ambiguous input; best-scoring match chosen (a=%t b=%t)\n", //nolint:errcheck
			res.Ambiguous.A, res.Ambiguous.B)
	}
	fmt.Fprintln(w) //nolint:errcheck

	fmt.Fprintf(w, "%s  %s  %s  %s\n", //nolint:errcheck
		padRight("Metric", 12), padRight("A", 10), padRight("B", 10), "Winner")
	for _, m := range res.Metrics {
		fmt.Fprintf(w, "%s  %s  %s  %s\n", //nolint:errcheck
			padRight(m.Metric, 12),
			padRight(trimFloat(m.A), 10),
			padRight(trimFloat(m.B), 10),
			m.Winner)
	}

	if res.Languages != nil {
		fmt.Fprintf(w, "\nShared languages: %s\n", joinOrDash(res.Languages.Shared)) //nolint:errcheck
		fmt.Fprintf(w, "Only A:           %s\n", joinOrDash(res.Languages.AOnly))    //nolint:errcheck
		fmt.Fprintf(w, "Only B:           %s\n", joinOrDash(res.Languages.BOnly))    //nolint:errcheck
	}
}

func renderValidate(w io.Writer, res query.ValidateResult) {
	writeStatus(w, res.Result)
	if res.Stack != nil {
		fmt.Fprintf(w, "Stack: %s\n", res.Stack.Describe()) //nolint:errcheck
	}
	if len(res.UnknownModels) > 0 {
		fmt.Fprintf(w, "Unrecognized models in: %s\n", strings.Join(res.UnknownModels, ", ")) //nolint:errcheck
	}
	if res.Matched != nil {
		fmt.Fprintf(w, "Benchmarked: %dms latency, %.1f/5 quality, $%.4f/min\n", //nolint:errcheck
			res.Matched.LatencyMs, res.Matched.Quality, res.Matched.CostPerMin)
		return
	}
	if len(res.Alternatives) > 0 {
		fmt.Fprintln(w, "Benchmarked providers per category:") //nolint:errcheck
		for _, c := range []string{"stt", "llm", "tts"} {
			fmt.Fprintf(w, "  %s: %s\n", c, strings.Join(res.Alternatives[c], ", ")) //nolint:errcheck
		}
	}
}

func renderScaffold(w io.Writer, res query.ScaffoldResult, written []string) {
	writeStatus(w, res.Result)
	if res.Status == query.StatusError {
		return
	}

	fmt.Fprintf(w, "Framework: %s\n", res.Framework)    //nolint:errcheck
	fmt.Fprintf(w, "Stack:     %s (score %.1f)\n", res.Stack.Combo, res.Stack.Score) //nolint:errcheck
	for _, warning := range res.LinkWarnings {
		fmt.Fprintf(w, "warning: %s\n", warning) //nolint:errcheck
	}

	if len(written) > 0 {
		fmt.Fprintln(w, "\nWrote:") //nolint:errcheck
		for _, path := range written {
			fmt.Fprintf(w, "  %s\n", path) //nolint:errcheck
		}
		return
	}
	fmt.Fprintln(w, "\nGenerated files (use --write to persist):") //nolint:errcheck
	for _, f := range res.Files {
		fmt.Fprintf(w, "  %s (%d bytes)\n", f.Path, len(f.Content)) //nolint:errcheck
	}
}

func renderProviders(w io.Writer, res query.ProvidersResult) {
	writeStatus(w, res.Result)
	if res.Status == query.StatusError {
		return
	}

	nameWidth := len("Provider")
	for _, p := range res.Providers {
		if l := runewidth.StringWidth(p.Name); l > nameWidth {
			nameWidth = l
		}
	}
	fmt.Fprintf(w, "%s  %s  %s\n", padRight("Provider", nameWidth), padRight("Type", 4), "Models") //nolint:errcheck
	for _, p := range res.Providers {
		fmt.Fprintf(w, "%s  %s  %s\n", //nolint:errcheck
			padRight(p.Name, nameWidth),
			padRight(string(p.Category), 4),
			strings.Join(p.Models, ", "))
	}
}

func renderHealth(w io.Writer, res query.HealthResult) {
	writeStatus(w, res.Result)
	fmt.Fprintf(w, "Benchmark rows: %d\n", res.BenchmarkRows) //nolint:errcheck
	fmt.Fprintf(w, "Providers:      %d\n", res.Providers)     //nolint:errcheck
	fmt.Fprintf(w, "Languages:      %d\n", res.Languages)     //nolint:errcheck
	fmt.Fprintf(w, "Use cases:      %d\n", res.UseCases)      //nolint:errcheck
	fmt.Fprintf(w, "Frameworks:     %d\n", res.Frameworks)    //nolint:errcheck
	for _, issue := range res.Issues {
		fmt.Fprintf(w, "issue: %s\n", issue) //nolint:errcheck
	}
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
