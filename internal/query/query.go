// Package query implements the engine's public operations: recommend,
// benchmarks, compare, validate, scaffold, providers, and health. Every
// operation is a pure function of the static catalogs and its request;
// failures surface as structured result payloads, never as process faults.
package query

import (
	"github.com/stackpick/stackpick/internal/catalog"
	"github.com/stackpick/stackpick/internal/ranking"
	"github.com/stackpick/stackpick/internal/resolve"
)

// Status is the coarse outcome discriminator carried by every response.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusError    Status = "error"
	StatusFallback Status = "fallback"
)

// Reason is a stable machine-readable code external callers may branch on.
// Present on every non-ok status.
type Reason string

const (
	ReasonUnsupportedLanguage      Reason = "unsupported-language"
	ReasonUnsupportedProvider      Reason = "unsupported-provider"
	ReasonUnparseableCombo         Reason = "unparseable-combo"
	ReasonNoMatchingCombo          Reason = "no-matching-combo"
	ReasonUnresolvedProvider       Reason = "unresolved-provider"
	ReasonUnsupportedModel         Reason = "unsupported-model"
	ReasonNoScaffoldCompatible     Reason = "no-scaffold-compatible-stack"
	ReasonTemplateGenerationFailed Reason = "template-generation-failed"
	ReasonCatalogIntegrity         Reason = "catalog-integrity"
)

// Result is the envelope embedded in every operation response.
type Result struct {
	Status      Status   `json:"status"`
	Reason      Reason   `json:"reason,omitempty"`
	Message     string   `json:"message,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func okResult() Result {
	return Result{Status: StatusOK}
}

func errorResult(reason Reason, message string, suggestions []string) Result {
	return Result{Status: StatusError, Reason: reason, Message: message, Suggestions: suggestions}
}

// DefaultFallbackThreshold is the score gap above which a scaffold fallback
// is worth telling the user about. Overridable via WithFallbackThreshold.
const DefaultFallbackThreshold = 2.0

// Engine answers queries over the static catalogs. Construct once with New;
// an Engine is immutable and safe for concurrent use.
type Engine struct {
	entries           []catalog.BenchmarkEntry
	resolver          *resolve.Resolver
	fallbackThreshold float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithFallbackThreshold overrides the scaffold fallback materiality
// threshold.
func WithFallbackThreshold(points float64) Option {
	return func(e *Engine) { e.fallbackThreshold = points }
}

// WithEntries substitutes the benchmark catalog. Intended for tests.
func WithEntries(entries []catalog.BenchmarkEntry) Option {
	return func(e *Engine) { e.entries = entries }
}

// New builds an Engine over the static catalogs.
func New(opts ...Option) *Engine {
	e := &Engine{
		entries:           catalog.Entries,
		resolver:          resolve.New(),
		fallbackThreshold: DefaultFallbackThreshold,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// StackView is the rendered form of a ranked benchmark entry.
type StackView struct {
	Rank       int      `json:"rank,omitempty"`
	Combo      string   `json:"combo"`
	Score      float64  `json:"score"`
	LatencyMs  int      `json:"latency_ms"`
	Quality    float64  `json:"quality"`
	CostPerMin float64  `json:"cost_per_min"`
	MOS        float64  `json:"mos,omitempty"`
	Languages  []string `json:"languages"`
	Note       string   `json:"note,omitempty"`
}

func stackView(r ranking.Ranked) StackView {
	return StackView{
		Rank:       r.Rank,
		Combo:      r.Entry.Combo(),
		Score:      r.Score,
		LatencyMs:  r.Entry.LatencyMs,
		Quality:    r.Entry.Quality,
		CostPerMin: r.Entry.CostPerMin,
		MOS:        r.Entry.MOS,
		Languages:  r.Entry.Languages,
		Note:       r.Entry.Note,
	}
}

func stackViews(ranked []ranking.Ranked) []StackView {
	out := make([]StackView, len(ranked))
	for i, r := range ranked {
		out[i] = stackView(r)
	}
	return out
}

// filterByLanguage returns the entries supporting the canonical language.
func filterByLanguage(entries []catalog.BenchmarkEntry, language string) []catalog.BenchmarkEntry {
	var out []catalog.BenchmarkEntry
	for _, e := range entries {
		if e.SupportsLanguage(language) {
			out = append(out, e)
		}
	}
	return out
}
