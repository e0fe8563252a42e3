package query

import (
	"fmt"
	"strings"

	"github.com/stackpick/stackpick/internal/catalog"
)

// HealthResult summarizes the catalogs and any integrity problems found in
// them. Issues are corpus-maintenance findings, not runtime failures, so
// they downgrade the status to warning rather than error.
type HealthResult struct {
	Result
	BenchmarkRows int      `json:"benchmark_rows"`
	Providers     int      `json:"providers"`
	Languages     int      `json:"languages"`
	UseCases      int      `json:"use_cases"`
	Frameworks    int      `json:"frameworks"`
	Issues        []string `json:"issues,omitempty"`
}

// Health checks referential integrity between the benchmark rows and the
// provider/language catalogs, and that the alias tables resolve their own
// canonical names.
func (e *Engine) Health() HealthResult {
	var issues []string

	for i, entry := range e.entries {
		for _, c := range catalog.Categories {
			name := entry.Provider(c)
			info, ok := catalog.ProviderByName(name)
			if !ok {
				issues = append(issues, fmt.Sprintf("row %d: %s provider %q is not in the directory", i+1, c, name))
				continue
			}
			if info.Category != c {
				issues = append(issues, fmt.Sprintf("row %d: %q is a %s provider used as %s", i+1, name, info.Category, c))
			}
			if model := entry.Model(c); !info.KnowsModel(model) {
				issues = append(issues, fmt.Sprintf("row %d: model %q is not in %s's model list", i+1, model, name))
			}
		}
		for _, lang := range entry.Languages {
			if !isCanonicalLanguage(lang) {
				issues = append(issues, fmt.Sprintf("row %d: language %q is not canonical", i+1, lang))
			}
		}
	}

	// Every canonical name must resolve back to itself (resolution is
	// idempotent over the catalogs).
	for _, lang := range catalog.Languages {
		if m, ok := e.resolver.Language(lang); !ok || m.Canonical != lang {
			issues = append(issues, fmt.Sprintf("language %q does not resolve to itself", lang))
		}
	}
	for _, p := range catalog.Providers {
		if m, ok := e.resolver.Provider(p.Name); !ok || m.Canonical != p.Name {
			issues = append(issues, fmt.Sprintf("provider %q does not resolve to itself", p.Name))
		}
	}

	result := HealthResult{
		Result:        okResult(),
		BenchmarkRows: len(e.entries),
		Providers:     len(catalog.Providers),
		Languages:     len(catalog.Languages),
		UseCases:      len(catalog.UseCases),
		Frameworks:    len(catalog.Frameworks),
		Issues:        issues,
	}
	if len(issues) > 0 {
		result.Status = StatusWarning
		result.Reason = ReasonCatalogIntegrity
		result.Message = fmt.Sprintf("%d catalog issue(s): %s", len(issues), strings.Join(issues, "; "))
	}
	return result
}

func isCanonicalLanguage(lang string) bool {
	for _, l := range catalog.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
