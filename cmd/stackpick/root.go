package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stackpick",
		Short: "stackpick - pick an STT+LLM+TTS stack for your voice agent",
		Long: `stackpick ranks benchmarked speech-to-text, language-model, and
text-to-speech provider combinations for a target language and use case.

It can recommend a stack, list and filter the benchmark catalog, compare two
stacks head to head, validate a hand-picked stack, and scaffold starter
project files for the winner.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRecommendCommand())
	cmd.AddCommand(newBenchmarksCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newScaffoldCommand())
	cmd.AddCommand(newProvidersCommand())
	cmd.AddCommand(newHealthCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
