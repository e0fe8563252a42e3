package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stackpick/stackpick/internal/projectconfig"
	"github.com/stackpick/stackpick/internal/query"
	"github.com/stackpick/stackpick/internal/wizard"
)

func newScaffoldCommand() *cobra.Command {
	var (
		outputFormat string
		requestFile  string
		write        bool
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate starter files for the best compatible stack",
		Long: `Rank the stacks for a language and use case, pick the best one the chosen
framework supports, and generate starter project files for it.

The engine only returns (path, content) pairs; nothing touches disk unless
--write is given. When language, use case, or framework are missing and the
terminal is interactive, a short wizard collects them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return scaffoldCommandE(cmd, outputFormat, requestFile, write, outputDir)
		},
	}

	cmd.Flags().StringP("language", "l", "", "Target spoken language")
	cmd.Flags().StringP("use-case", "u", "", "Business use case")
	cmd.Flags().StringP("optimize-for", "o", "", "Optimization target: balanced, latency, quality, or cost")
	cmd.Flags().String("framework", "", "Target framework: pipecat or nextjs")
	cmd.Flags().String("name", "", "Project name (defaults to a slug of language and use case)")
	cmd.Flags().BoolVar(&write, "write", false, "Write generated files to disk")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory to write files into (with --write)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: text or json")
	cmd.Flags().StringVar(&requestFile, "request", "", "YAML file with request options")

	return cmd
}

func scaffoldCommandE(cmd *cobra.Command, outputFormat, requestFile string, write bool, outputDir string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	opts, err := collectOptions(cmd, requestFile, map[string]string{
		"language":     "language",
		"use-case":     "use_case",
		"optimize-for": "optimize_for",
		"framework":    "framework",
		"name":         "project_name",
	})
	if err != nil {
		return err
	}
	if _, ok := opts["optimize_for"]; !ok {
		opts["optimize_for"] = cfg.Defaults.OptimizeFor
	}

	var req query.ScaffoldRequest
	unknown, err := query.DecodeOptions(opts, &req)
	if err != nil {
		return err
	}
	warnUnknownOptions(cmd, unknown)

	if err := fillScaffoldInputs(cmd, cfg, &req); err != nil {
		return err
	}

	res := engine.Scaffold(req)

	var written []string
	if write && res.Status != query.StatusError {
		if outputDir == "" {
			outputDir = cfg.Scaffold.OutputDir
		}
		written, err = writeScaffoldFiles(outputDir, res)
		if err != nil {
			return err
		}
	}

	return finish(cmd, outputFormat, cfg, res, res.Result, func(w io.Writer) {
		renderScaffold(w, res, written)
	})
}

// fillScaffoldInputs prompts for missing required inputs when running in a
// terminal; otherwise it falls back to the project-config framework default
// and lets the engine report what is still missing.
func fillScaffoldInputs(cmd *cobra.Command, cfg *projectconfig.ProjectConfig, req *query.ScaffoldRequest) error {
	if req.Framework == "" {
		req.Framework = cfg.Defaults.Framework
	}
	if req.Language != "" && req.UseCase != "" {
		return nil
	}

	stdin, isFile := cmd.InOrStdin().(*os.File)
	if !isFile || !term.IsTerminal(int(stdin.Fd())) {
		return nil
	}

	spec, err := wizard.RunScaffoldWizard(cmd.InOrStdin(), cmd.OutOrStdout(), wizard.ScaffoldSpec{
		Language:  req.Language,
		UseCase:   req.UseCase,
		Framework: req.Framework,
	})
	if err != nil {
		return err
	}
	req.Language = spec.Language
	req.UseCase = spec.UseCase
	req.Framework = spec.Framework
	return nil
}

// writeScaffoldFiles persists the generated files under dir, creating parent
// directories as needed. Returns the written paths.
func writeScaffoldFiles(dir string, res query.ScaffoldResult) ([]string, error) {
	written := make([]string, 0, len(res.Files))
	for _, f := range res.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
