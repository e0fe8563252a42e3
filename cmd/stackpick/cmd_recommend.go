package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stackpick/stackpick/internal/projectconfig"
	"github.com/stackpick/stackpick/internal/query"
)

func newRecommendCommand() *cobra.Command {
	var (
		outputFormat string
		requestFile  string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend the best stacks for a language and use case",
		Long: `Rank the benchmarked stacks that support a target language, weighted for
your use case and optimization preference, and highlight the top pick.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return recommendCommandE(cmd, outputFormat, requestFile)
		},
	}

	cmd.Flags().StringP("language", "l", "", "Target spoken language (required unless set in --request)")
	cmd.Flags().StringP("use-case", "u", "", "Business use case (e.g. \"customer support\")")
	cmd.Flags().StringP("optimize-for", "o", "", "Optimization target: balanced, latency, quality, or cost")
	cmd.Flags().IntP("max-results", "n", 0, "Maximum number of stacks to return (1-10)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: text or json")
	cmd.Flags().StringVar(&requestFile, "request", "", "YAML file with request options")

	return cmd
}

func recommendCommandE(cmd *cobra.Command, outputFormat, requestFile string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	opts, err := collectOptions(cmd, requestFile, map[string]string{
		"language":     "language",
		"use-case":     "use_case",
		"optimize-for": "optimize_for",
		"max-results":  "max_results",
	})
	if err != nil {
		return err
	}
	applyRecommendDefaults(opts, cfg)

	var req query.RecommendRequest
	unknown, err := query.DecodeOptions(opts, &req)
	if err != nil {
		return err
	}
	warnUnknownOptions(cmd, unknown)

	res := engine.Recommend(req)
	return finish(cmd, outputFormat, cfg, res, res.Result, func(w io.Writer) {
		renderRecommend(w, res)
	})
}

// applyRecommendDefaults fills project-config defaults for options the user
// left unset.
func applyRecommendDefaults(opts map[string]any, cfg *projectconfig.ProjectConfig) {
	if _, ok := opts["optimize_for"]; !ok {
		opts["optimize_for"] = cfg.Defaults.OptimizeFor
	}
	if _, ok := opts["max_results"]; !ok {
		opts["max_results"] = cfg.Defaults.MaxResults
	}
}

// finish renders res in the resolved output format and converts error-status
// payloads into the exit-code-1 error type.
func finish(cmd *cobra.Command, flagFormat string, cfg *projectconfig.ProjectConfig, res any, r query.Result, renderText func(io.Writer)) error {
	format := flagFormat
	if format == "" {
		format = cfg.Defaults.Format
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be text or json", format)
	}

	w := cmd.OutOrStdout()
	if format == "json" {
		if err := renderJSON(w, res); err != nil {
			return err
		}
	} else {
		renderText(w)
	}

	if r.Status == query.StatusError {
		return &QueryFailureError{Reason: string(r.Reason)}
	}
	return nil
}
