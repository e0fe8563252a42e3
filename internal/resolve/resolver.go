package resolve

import (
	"log/slog"

	"github.com/stackpick/stackpick/internal/catalog"
)

// Resolver canonicalizes provider, language, and use-case text against the
// catalog alias tables. Build one with New at startup; it is read-only
// afterwards and safe for concurrent use.
type Resolver struct {
	providers *AliasIndex
	languages *AliasIndex
	useCases  *AliasIndex
}

// New builds a Resolver over the static catalog tables.
func New() *Resolver {
	langAliases := make(map[string][]string, len(catalog.Languages))
	for _, l := range catalog.Languages {
		langAliases[l] = catalog.LanguageAliases[l]
	}
	return &Resolver{
		providers: NewAliasIndex(catalog.ProviderAliases),
		languages: NewAliasIndex(langAliases),
		useCases:  NewAliasIndex(catalog.UseCaseAliases()),
	}
}

// Provider resolves free-text provider input, which may carry a trailing
// model name ("open ai gpt-4.1-mini"). The returned Match records which
// alias matched so the caller can split off the model portion.
func (r *Resolver) Provider(text string) (Match, bool) {
	m, ok := r.providers.Lookup(text)
	if !ok {
		slog.Debug("provider unresolved", "input", text)
	}
	return m, ok
}

// Language resolves free-text language input to a canonical language name.
func (r *Resolver) Language(text string) (Match, bool) {
	return r.languages.Lookup(text)
}

// UseCase resolves free-text use-case input to a canonical use-case key.
// Exact alias matches are checked before prefix rules so that short keys
// ("legal") cannot be shadowed by longer aliases.
func (r *Resolver) UseCase(text string) (string, bool) {
	if m, ok := r.useCases.LookupExact(text); ok {
		return m.Canonical, true
	}
	m, ok := r.useCases.Lookup(text)
	if !ok {
		return "", false
	}
	return m.Canonical, true
}
