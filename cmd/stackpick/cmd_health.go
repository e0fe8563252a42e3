package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackpick/stackpick/internal/projectconfig"
	"github.com/stackpick/stackpick/internal/query"
	"github.com/stackpick/stackpick/internal/validation"
)

func newHealthCommand() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check catalog integrity and the project config",
		Long: `Verify that every benchmark row references known providers and languages,
that the alias tables resolve their own canonical names, and that the
.stackpick.yaml config file (if present) passes schema validation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return healthCommandE(cmd, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: text or json")

	return cmd
}

func healthCommandE(cmd *cobra.Command, outputFormat string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	res := engine.Health()

	if issues, err := checkConfigFile(); err != nil {
		return err
	} else if len(issues) > 0 {
		res.Issues = append(res.Issues, issues...)
		if res.Status == query.StatusOK {
			res.Status = query.StatusWarning
			res.Reason = query.ReasonCatalogIntegrity
			res.Message = "catalog is consistent but the project config has problems"
		}
	}

	return finish(cmd, outputFormat, cfg, res, res.Result, func(w io.Writer) {
		renderHealth(w, res)
	})
}

// checkConfigFile schema-validates the nearest .stackpick.yaml, if any.
func checkConfigFile() ([]string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	path, data, err := projectconfig.Find(cwd)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var issues []string
	for _, problem := range validation.ValidateConfigBytes(data) {
		issues = append(issues, fmt.Sprintf("%s: %s", path, problem))
	}
	return issues, nil
}
