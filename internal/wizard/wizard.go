// Package wizard collects scaffold inputs interactively when they were not
// supplied as flags.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/stackpick/stackpick/internal/catalog"
)

// ScaffoldSpec holds the fields collected by the scaffold wizard.
type ScaffoldSpec struct {
	Language  string
	UseCase   string
	Framework string
}

// RunScaffoldWizard runs an interactive huh form for the scaffold inputs.
// Non-empty initial values pre-populate their fields and are kept unless the
// user changes them.
func RunScaffoldWizard(in io.Reader, out io.Writer, initial ScaffoldSpec) (*ScaffoldSpec, error) {
	language := initial.Language
	useCase := initial.UseCase
	framework := initial.Framework
	if framework == "" {
		framework = catalog.Frameworks[0].Name
	}

	languageOpts := make([]huh.Option[string], 0, len(catalog.Languages))
	for _, l := range catalog.Languages {
		languageOpts = append(languageOpts, huh.NewOption(l, l))
	}
	frameworkOpts := make([]huh.Option[string], 0, len(catalog.Frameworks))
	for _, f := range catalog.Frameworks {
		frameworkOpts = append(frameworkOpts, huh.NewOption(f.Display, f.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Description("The spoken language your agent must support").
				Options(languageOpts...).
				Value(&language),
			huh.NewInput().
				Title("Use case").
				Description("What is the agent for? (e.g. customer support)").
				Placeholder("customer support").
				Value(&useCase).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("use case is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Framework").
				Options(frameworkOpts...).
				Value(&framework),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	return &ScaffoldSpec{
		Language:  strings.TrimSpace(language),
		UseCase:   strings.TrimSpace(useCase),
		Framework: framework,
	}, nil
}
