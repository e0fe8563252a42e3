package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/stackpick/stackpick/internal/query"
)

func newValidateCommand() *cobra.Command {
	var (
		outputFormat string
		requestFile  string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a hand-picked stack",
		Long: `Check that three providers resolve, that each supplied model is in its
provider's known-model list, and whether the exact stack has been
benchmarked. Unrecognized models are a warning, not an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return validateCommandE(cmd, outputFormat, requestFile)
		},
	}

	cmd.Flags().String("stt-provider", "", "Speech-to-text provider")
	cmd.Flags().String("stt-model", "", "Speech-to-text model")
	cmd.Flags().String("llm-provider", "", "Language-model provider")
	cmd.Flags().String("llm-model", "", "Language model")
	cmd.Flags().String("tts-provider", "", "Text-to-speech provider")
	cmd.Flags().String("tts-model", "", "Text-to-speech model")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: text or json")
	cmd.Flags().StringVar(&requestFile, "request", "", "YAML file with request options")

	return cmd
}

func validateCommandE(cmd *cobra.Command, outputFormat, requestFile string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	opts, err := collectOptions(cmd, requestFile, map[string]string{
		"stt-provider": "stt_provider",
		"stt-model":    "stt_model",
		"llm-provider": "llm_provider",
		"llm-model":    "llm_model",
		"tts-provider": "tts_provider",
		"tts-model":    "tts_model",
	})
	if err != nil {
		return err
	}

	var req query.ValidateRequest
	unknown, err := query.DecodeOptions(opts, &req)
	if err != nil {
		return err
	}
	warnUnknownOptions(cmd, unknown)

	res := engine.Validate(req)
	return finish(cmd, outputFormat, cfg, res, res.Result, func(w io.Writer) {
		renderValidate(w, res)
	})
}
