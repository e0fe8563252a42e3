package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/stackpick/stackpick/internal/query"
)

func newCompareCommand() *cobra.Command {
	var (
		outputFormat string
		requestFile  string
	)

	cmd := &cobra.Command{
		Use:   "compare <combo-a> <combo-b>",
		Short: "Compare two stacks head to head",
		Long: `Compare two combo strings on latency, quality, cost, and language
coverage. A combo is "STT model + LLM model + TTS model", e.g.:

  stackpick compare "Deepgram nova-3 + OpenAI gpt-4.1-mini + Cartesia sonic-3" \
                    "AssemblyAI universal-streaming + Anthropic claude-haiku-4-5 + ElevenLabs eleven-flash-v2-5"

Models may be omitted; ambiguous provider-only input picks the best-scoring
benchmarked variant.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compareCommandE(cmd, args, outputFormat, requestFile)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: text or json")
	cmd.Flags().StringVar(&requestFile, "request", "", "YAML file with request options (combo_a, combo_b)")

	return cmd
}

func compareCommandE(cmd *cobra.Command, args []string, outputFormat, requestFile string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	opts, err := collectOptions(cmd, requestFile, nil)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		opts["combo_a"] = args[0]
	}
	if len(args) > 1 {
		opts["combo_b"] = args[1]
	}

	var req query.CompareRequest
	unknown, err := query.DecodeOptions(opts, &req)
	if err != nil {
		return err
	}
	warnUnknownOptions(cmd, unknown)

	res := engine.Compare(req)
	return finish(cmd, outputFormat, cfg, res, res.Result, func(w io.Writer) {
		renderCompare(w, res)
	})
}
