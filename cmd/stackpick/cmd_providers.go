package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/stackpick/stackpick/internal/query"
)

func newProvidersCommand() *cobra.Command {
	var (
		outputFormat string
		requestFile  string
	)

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List the providers in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return providersCommandE(cmd, outputFormat, requestFile)
		},
	}

	cmd.Flags().StringP("category", "c", "", "Filter by category: stt, llm, or tts")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: text or json")
	cmd.Flags().StringVar(&requestFile, "request", "", "YAML file with request options")

	return cmd
}

func providersCommandE(cmd *cobra.Command, outputFormat, requestFile string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	opts, err := collectOptions(cmd, requestFile, map[string]string{
		"category": "category",
	})
	if err != nil {
		return err
	}

	var req query.ProvidersRequest
	unknown, err := query.DecodeOptions(opts, &req)
	if err != nil {
		return err
	}
	warnUnknownOptions(cmd, unknown)

	res := engine.Providers(req)
	return finish(cmd, outputFormat, cfg, res, res.Result, func(w io.Writer) {
		renderProviders(w, res)
	})
}
