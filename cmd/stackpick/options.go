package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stackpick/stackpick/internal/projectconfig"
	"github.com/stackpick/stackpick/internal/query"
)

// loadEngine builds a query engine configured from the project config found
// in (or above) the working directory.
func loadEngine() (*query.Engine, *projectconfig.ProjectConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("resolving working directory: %w", err)
	}
	cfg, err := projectconfig.Load(cwd)
	if err != nil {
		return nil, nil, err
	}
	engine := query.New(query.WithFallbackThreshold(cfg.FallbackThreshold()))
	return engine, cfg, nil
}

// collectOptions assembles the untyped options map an operation decodes its
// request from: values from --request (if given) overlaid with every flag
// the user set explicitly.
func collectOptions(cmd *cobra.Command, requestFile string, flags map[string]string) (map[string]any, error) {
	opts := map[string]any{}

	if requestFile != "" {
		data, err := os.ReadFile(requestFile)
		if err != nil {
			return nil, fmt.Errorf("reading request file: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return nil, fmt.Errorf("parsing request file %s: %w", requestFile, err)
		}
	}

	for flagName, optKey := range flags {
		if !cmd.Flags().Changed(flagName) {
			continue
		}
		f := cmd.Flags().Lookup(flagName)
		if f == nil {
			continue
		}
		if f.Value.Type() == "int" {
			n, err := cmd.Flags().GetInt(flagName)
			if err != nil {
				return nil, err
			}
			opts[optKey] = n
			continue
		}
		opts[optKey] = f.Value.String()
	}
	return opts, nil
}

// warnUnknownOptions reports request-file keys no operation recognizes.
// Probable typos are worth a line on stderr, but never fail the query.
func warnUnknownOptions(cmd *cobra.Command, unknown []string) {
	for _, key := range unknown {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring unrecognized option %q\n", key) //nolint:errcheck
	}
}
