package query

import (
	"fmt"

	"github.com/stackpick/stackpick/internal/catalog"
)

// ProvidersRequest lists the provider directory, optionally for one
// category.
type ProvidersRequest struct {
	Category string `mapstructure:"category"`
}

// ProvidersResult is the directory payload.
type ProvidersResult struct {
	Result
	Category  string                 `json:"category,omitempty"`
	Providers []catalog.ProviderInfo `json:"providers,omitempty"`
}

// Providers returns the provider directory, filtered to one category when
// requested.
func (e *Engine) Providers(req ProvidersRequest) ProvidersResult {
	if req.Category == "" {
		return ProvidersResult{Result: okResult(), Providers: catalog.Providers}
	}

	c := catalog.Category(req.Category)
	switch c {
	case catalog.CategorySTT, catalog.CategoryLLM, catalog.CategoryTTS:
		return ProvidersResult{
			Result:    okResult(),
			Category:  req.Category,
			Providers: catalog.ProvidersInCategory(c),
		}
	default:
		return ProvidersResult{Result: errorResult(ReasonUnsupportedProvider,
			fmt.Sprintf("unknown category %q: valid categories are stt, llm, tts", req.Category), nil)}
	}
}
