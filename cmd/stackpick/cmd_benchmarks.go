package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/stackpick/stackpick/internal/query"
)

func newBenchmarksCommand() *cobra.Command {
	var (
		outputFormat string
		requestFile  string
	)

	cmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "List and filter the benchmark catalog",
		Long: `List every benchmarked stack, optionally filtered by language and/or
provider, with fastest/best-quality/cheapest highlights.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return benchmarksCommandE(cmd, outputFormat, requestFile)
		},
	}

	cmd.Flags().StringP("language", "l", "", "Only stacks supporting this language")
	cmd.Flags().StringP("provider", "p", "", "Only stacks using this provider (any category)")
	cmd.Flags().StringP("sort", "s", "", "Sort key: latency, quality, or cost")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: text or json")
	cmd.Flags().StringVar(&requestFile, "request", "", "YAML file with request options")

	return cmd
}

func benchmarksCommandE(cmd *cobra.Command, outputFormat, requestFile string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	opts, err := collectOptions(cmd, requestFile, map[string]string{
		"language": "language",
		"provider": "provider",
		"sort":     "sort_by",
	})
	if err != nil {
		return err
	}

	var req query.BenchmarksRequest
	unknown, err := query.DecodeOptions(opts, &req)
	if err != nil {
		return err
	}
	warnUnknownOptions(cmd, unknown)

	res := engine.Benchmarks(req)
	return finish(cmd, outputFormat, cfg, res, res.Result, func(w io.Writer) {
		renderBenchmarks(w, res)
	})
}
